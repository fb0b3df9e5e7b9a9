// Package config loads the CLI's environment-backed configuration. A .env
// file in the working directory is applied first when present; real
// environment variables win.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything devswiss reads from the environment. Flags may
// override individual values at the command layer.
type Config struct {
	// ArtProvider selects the art-generation backend: stability, google,
	// or openai.
	ArtProvider string `env:"DEVSWISS_ART_PROVIDER" envDefault:"stability"`

	StabilityAPIKey string `env:"STABILITY_API_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`

	LogLevel string `env:"DEVSWISS_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"DEVSWISS_LOG_JSON" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// ArtAPIKey returns the API key matching the selected art provider.
func (c *Config) ArtAPIKey() string {
	switch c.ArtProvider {
	case "google":
		return c.GeminiAPIKey
	case "openai":
		return c.OpenAIAPIKey
	default:
		return c.StabilityAPIKey
	}
}
