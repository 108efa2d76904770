// Package config provides configuration loading and structs for the Kotae server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug  bool         `yaml:"debug"`
	Server ServerConfig `yaml:"server"`
	OpenAI OpenAIConfig `yaml:"openai"`
	Answer AnswerConfig `yaml:"answer"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// OpenAIConfig holds settings for the chat-completion service.
// APIKey is normally left empty in the file and supplied via the
// OPENAI_API_KEY environment variable, which always wins over the file.
type OpenAIConfig struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	// BaseURL overrides the API endpoint (OpenAI-compatible servers, tests).
	BaseURL string `yaml:"base_url"`
}

// AnswerConfig holds limits for the answer handlers.
type AnswerConfig struct {
	PageExcerptLimit    int `yaml:"page_excerpt_limit"`
	CSVPreviewRows      int `yaml:"csv_preview_rows"`
	FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds"`
}

// Load reads and parses the config file at path, applies defaults, and
// overlays the OPENAI_API_KEY environment variable. Returns an error if the
// file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

// Default returns a config built from defaults and the environment alone,
// for running without a config file.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg
}

// applyEnv overlays environment variables onto cfg. The environment wins
// over the file so a key checked into config.yaml can never shadow the
// deployed credential.
func applyEnv(cfg *Config) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAI.APIKey = key
	}
}
