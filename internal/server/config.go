package server

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// OpenAI-compatible backend for path generation.
	APIKey    string `envconfig:"OPENAI_API_KEY"`
	BaseURL   string `envconfig:"OPENAI_BASE_URL" default:""`
	Model     string `envconfig:"MENTOR_MODEL" default:"gpt-4o-mini"`
	MaxTokens int    `envconfig:"MENTOR_MAX_TOKENS" default:"2000"`
}

// LoadConfig reads the environment (plus an optional .env file).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load server config: %w", err)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("load server config: OPENAI_API_KEY is required")
	}
	return &cfg, nil
}
