package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/todolist/internal/flagx"
)

// parseFlags populates client Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API (e.g., "http://127.0.0.1:8080")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerURL, "a", config.ServerURL, "base URL of the backend API")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
