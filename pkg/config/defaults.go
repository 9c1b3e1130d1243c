// Copyright 2026 Repo AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import "time"

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		GitHub: GitHubConfig{
			APIBase:          "https://api.github.com",
			TokenEnv:         "GITHUB_TOKEN",
			Timeout:          20 * time.Second,
			FetchConcurrency: 4,
			MaxTreeItems:     6000,
		},
		LLM: LLMConfig{
			BaseURL:     "https://api.tokenfactory.nebius.com/v1",
			APIKeyEnv:   "NEBIUS_API_KEY",
			Model:       "meta-llama/Meta-Llama-3.1-70B-Instruct",
			MaxTokens:   700,
			Temperature: 0.2,
			Timeout:     60 * time.Second,
		},
		Budget: BudgetConfig{
			TotalChars:         45000,
			PerFileChars:       12000,
			ReadmeChars:        18000,
			OversizedFileBytes: 80000,
			PerFileOverhead:    96,
		},
		Cache: CacheConfig{
			Backend: "memory",
			TTL:     10 * time.Minute,
			Path:    "repo-summarizer-cache.db",
		},
		Global: GlobalConfig{
			LogLevel: "info",
		},
	}
}

// applyDefaults fills zero-valued optional fields after a file load.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = def.Server.Addr
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = def.Server.ReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = def.Server.WriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}

	if cfg.GitHub.APIBase == "" {
		cfg.GitHub.APIBase = def.GitHub.APIBase
	}
	if cfg.GitHub.TokenEnv == "" {
		cfg.GitHub.TokenEnv = def.GitHub.TokenEnv
	}
	if cfg.GitHub.Timeout == 0 {
		cfg.GitHub.Timeout = def.GitHub.Timeout
	}
	if cfg.GitHub.FetchConcurrency == 0 {
		cfg.GitHub.FetchConcurrency = def.GitHub.FetchConcurrency
	}
	if cfg.GitHub.MaxTreeItems == 0 {
		cfg.GitHub.MaxTreeItems = def.GitHub.MaxTreeItems
	}

	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = def.LLM.BaseURL
	}
	if cfg.LLM.APIKeyEnv == "" {
		cfg.LLM.APIKeyEnv = def.LLM.APIKeyEnv
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = def.LLM.Model
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = def.LLM.MaxTokens
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = def.LLM.Temperature
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = def.LLM.Timeout
	}

	if cfg.Budget.TotalChars == 0 {
		cfg.Budget.TotalChars = def.Budget.TotalChars
	}
	if cfg.Budget.PerFileChars == 0 {
		cfg.Budget.PerFileChars = def.Budget.PerFileChars
	}
	if cfg.Budget.ReadmeChars == 0 {
		cfg.Budget.ReadmeChars = def.Budget.ReadmeChars
	}
	if cfg.Budget.OversizedFileBytes == 0 {
		cfg.Budget.OversizedFileBytes = def.Budget.OversizedFileBytes
	}
	if cfg.Budget.PerFileOverhead == 0 {
		cfg.Budget.PerFileOverhead = def.Budget.PerFileOverhead
	}

	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = def.Cache.Backend
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = def.Cache.TTL
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = def.Cache.Path
	}

	if cfg.Global.LogLevel == "" {
		cfg.Global.LogLevel = def.Global.LogLevel
	}
}
