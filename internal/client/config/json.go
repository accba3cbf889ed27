package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/todolist/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling.
type JsonConfig struct {
	ServerURL string `json:"server_url"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flags; without those flags nothing is loaded.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerURL != "" {
		config.ServerURL = c.ServerURL
	}
}
