package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"slotcal/internal/extract"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvModel, "")
	t.Setenv(EnvDatabase, "")

	cfg := Load()

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, extract.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, extract.DefaultModel, cfg.Model)
	assert.Equal(t, DefaultDatabase, cfg.Database)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIKey, "sk-test")
	t.Setenv(EnvBaseURL, "http://localhost:8080/v1")
	t.Setenv(EnvModel, "test-model")
	t.Setenv(EnvDatabase, ":memory:")

	cfg := Load()

	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "http://localhost:8080/v1", cfg.BaseURL)
	assert.Equal(t, "test-model", cfg.Model)
	assert.Equal(t, ":memory:", cfg.Database)
}
