// Package config loads process configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"slotcal/internal/extract"
)

// Environment variables read by Load.
const (
	EnvAPIKey   = "OPENROUTER_API_KEY"
	EnvBaseURL  = "SLOTCAL_BASE_URL"
	EnvModel    = "SLOTCAL_MODEL"
	EnvDatabase = "SLOTCAL_DB"
)

// DefaultDatabase is the calendar database path used when SLOTCAL_DB is
// unset and no --db flag is given.
const DefaultDatabase = "slotcal.db"

// Config holds process-level settings.
type Config struct {
	// APIKey authenticates against the extraction gateway. Empty is valid
	// at load time; the live extraction client rejects it at construction.
	APIKey string

	// BaseURL is the OpenAI-compatible API base URL.
	BaseURL string

	// Model is the model identifier sent with extraction requests.
	Model string

	// Database is the SQLite path for the calendar store.
	Database string
}

// Load reads configuration from the environment, first merging in a .env
// file if one exists (missing .env is not an error).
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIKey:   os.Getenv(EnvAPIKey),
		BaseURL:  envOr(EnvBaseURL, extract.DefaultBaseURL),
		Model:    envOr(EnvModel, extract.DefaultModel),
		Database: envOr(EnvDatabase, DefaultDatabase),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
