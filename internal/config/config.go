package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Elias-Missa/ascendency-rpg/internal/storage"
)

// Config is resolved once at startup from .env / environment variables.
// Command-line flags override both.
type Config struct {
	DBPath    string // ASCEND_DB
	ProfileID string // ASCEND_PROFILE
}

func Load() (*Config, error) {
	// A missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	dbPath := os.Getenv("ASCEND_DB")
	if dbPath == "" {
		def, err := storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		dbPath = def
	}

	profile := os.Getenv("ASCEND_PROFILE")
	if profile == "" {
		profile = storage.DefaultProfileID
	}

	return &Config{DBPath: dbPath, ProfileID: profile}, nil
}
