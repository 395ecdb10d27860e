// Package config loads runtime configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the persistence layer.
type Config struct {
	// Driver is the database driver name: "sqlite3" (default) or "postgres".
	Driver string
	// DSN is the data source name. For sqlite3 this is the database file
	// path; for postgres it is the connection URL.
	DSN string
	// SessionFile is where the logged-in-user snapshot is persisted.
	SessionFile string
}

// Load reads configuration from the environment, honoring a .env file
// in the working directory if one exists.
func Load() *Config {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		Driver:      getEnv("DB_DRIVER", "sqlite3"),
		DSN:         getEnv("DB_PATH", "data/flashcards.db"),
		SessionFile: getEnv("SESSION_FILE", "data/session.json"),
	}

	if cfg.Driver == "postgres" {
		if url := os.Getenv("DATABASE_URL"); url != "" {
			cfg.DSN = url
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
