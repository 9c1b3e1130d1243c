package config

import (
	"fmt"
	"os"
	"time"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file path when set.
const EnvConfigPath = "REPO_SUMMARIZER_CONFIG"

// Load loads configuration from a specific file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read config file: %s", path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse config file: %s", path), err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError("config validation failed", err)
	}

	return &cfg, nil
}

// LoadFromEnv loads config from the path named by REPO_SUMMARIZER_CONFIG, or
// returns validated defaults when no file is configured.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError("config validation failed", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies REPO_SUMMARIZER_* environment variables.
// These take highest priority and override file-based config.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("REPO_SUMMARIZER_ADDR"); val != "" {
		cfg.Server.Addr = val
	}
	if val := os.Getenv("REPO_SUMMARIZER_LOG_LEVEL"); val != "" {
		cfg.Global.LogLevel = val
	}
	if val := os.Getenv("REPO_SUMMARIZER_GITHUB_API_BASE"); val != "" {
		cfg.GitHub.APIBase = val
	}
	if val := os.Getenv("REPO_SUMMARIZER_LLM_BASE_URL"); val != "" {
		cfg.LLM.BaseURL = val
	}
	if val := os.Getenv("REPO_SUMMARIZER_LLM_MODEL"); val != "" {
		cfg.LLM.Model = val
	}
	if val := os.Getenv("REPO_SUMMARIZER_CACHE_BACKEND"); val != "" {
		cfg.Cache.Backend = val
	}
	if val := os.Getenv("REPO_SUMMARIZER_CACHE_TTL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Cache.TTL = d
		}
	}
}
