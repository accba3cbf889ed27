package config

import "os"

// parseEnv overlays Config fields from environment variables. cmd/server
// loads a .env file into the environment before LoadConfig runs, so these
// are also the keys a .env file should use.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
}
