package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LLM_PROVIDER", "OPENROUTER_MODEL", "LLM_TIMEOUT", "DB_ENABLED", "MAX_UPLOAD_SIZE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, ProviderOpenRouter, cfg.LLM.Provider)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "meta-llama/llama-3.1-8b-instruct:free", cfg.LLM.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, int64(5242880), cfg.Upload.MaxFileSize)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("LOG_JSON", "1")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.True(t, cfg.Database.Enabled)
	assert.True(t, cfg.Log.JSON)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "soon")
	t.Setenv("DB_ENABLED", "maybe")
	t.Setenv("MAX_UPLOAD_SIZE", "big")

	cfg := Load()

	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, int64(5242880), cfg.Upload.MaxFileSize)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5433", User: "u", Password: "p", DBName: "iq",
	}}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=iq sslmode=disable", cfg.GetDatabaseDSN())
}
