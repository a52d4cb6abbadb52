// Package config loads trendflow configuration from a YAML file with
// environment-variable overrides for credentials.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all trendflow configuration.
type Config struct {
	LLM     LLMConfig     `yaml:"llm"`
	Logging LoggingConfig `yaml:"logging"`
}

// LLMConfig configures the generation client.
type LLMConfig struct {
	APIKey string `yaml:"api_key"`
	// FlashModel serves classification, structured generation, and standard
	// text generation.
	FlashModel string `yaml:"flash_model"`
	// ProModel serves deep-reasoning strategic queries.
	ProModel string `yaml:"pro_model"`
	// ThinkingBudget is the reasoning token budget for deep mode.
	ThinkingBudget int32 `yaml:"thinking_budget"`
	// Timeout bounds a single generation call, e.g. "2m".
	Timeout string `yaml:"timeout"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			FlashModel:     "gemini-3-flash-preview",
			ProModel:       "gemini-3-pro-preview",
			ThinkingBudget: 32768,
			Timeout:        "2m",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path. A missing file yields defaults; a
// present but unparsable file is an error. Environment variables override
// the file in either case.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variables over file values.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
	if model := os.Getenv("TRENDFLOW_FLASH_MODEL"); model != "" {
		c.LLM.FlashModel = model
	}
	if model := os.Getenv("TRENDFLOW_PRO_MODEL"); model != "" {
		c.LLM.ProModel = model
	}
}

// GetLLMTimeout parses the configured timeout, falling back to two minutes.
func (c *Config) GetLLMTimeout() time.Duration {
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil || d <= 0 {
		return 2 * time.Minute
	}
	return d
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("no API key configured: set llm.api_key or GEMINI_API_KEY")
	}
	if c.LLM.FlashModel == "" || c.LLM.ProModel == "" {
		return fmt.Errorf("model names must not be empty")
	}
	return nil
}
