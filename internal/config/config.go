package config

import "os"

type Config struct {
	Port        string
	DatabaseURL string
}

// Load reads configuration from the environment. DATABASE_URL is optional:
// when it is empty the server runs against the in-memory demo store.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	return Config{
		Port:        port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}
