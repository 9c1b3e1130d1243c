// Copyright 2026 Repo AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package config provides configuration management for repo-summarizer.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Config file: path from --config flag or REPO_SUMMARIZER_CONFIG
// 3. Environment Variables: REPO_SUMMARIZER_*
package config

import (
	"os"
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	GitHub GitHubConfig `yaml:"github"`
	LLM    LLMConfig    `yaml:"llm"`
	Budget BudgetConfig `yaml:"budget"`
	Cache  CacheConfig  `yaml:"cache"`
	Global GlobalConfig `yaml:"global"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// GitHubConfig contains GitHub API client settings.
type GitHubConfig struct {
	APIBase string `yaml:"api_base"`
	// TokenEnv names the environment variable holding the token.
	// A raw token is never allowed in the config file.
	TokenEnv         string        `yaml:"token_env"`
	Timeout          time.Duration `yaml:"timeout"`
	FetchConcurrency int           `yaml:"fetch_concurrency"`
	MaxTreeItems     int           `yaml:"max_tree_items"`
}

// Token resolves the GitHub token from the configured environment variable.
// Empty means unauthenticated requests (lower rate limits, public repos only).
func (g GitHubConfig) Token() string {
	if g.TokenEnv == "" {
		return ""
	}
	return os.Getenv(g.TokenEnv)
}

// LLMConfig contains settings for the OpenAI-compatible summarization backend.
type LLMConfig struct {
	BaseURL     string        `yaml:"base_url"`
	APIKeyEnv   string        `yaml:"api_key_env"`
	Model       string        `yaml:"model"`
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

// APIKey resolves the model API key from the configured environment variable.
func (l LLMConfig) APIKey() string {
	if l.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(l.APIKeyEnv)
}

// BudgetConfig contains the content selection budget policy values.
type BudgetConfig struct {
	// TotalChars is the hard cap on the assembled payload.
	TotalChars int `yaml:"total_chars"`
	// PerFileChars caps each admitted file's content.
	PerFileChars int `yaml:"per_file_chars"`
	// ReadmeChars is the larger cap applied to README files instead of PerFileChars.
	ReadmeChars int `yaml:"readme_chars"`
	// OversizedFileBytes is the absolute ceiling above which a file is never
	// fetched, independent of the payload budget.
	OversizedFileBytes int `yaml:"oversized_file_bytes"`
	// PerFileOverhead reserves room per admitted file for the path header and
	// separator the assembler emits.
	PerFileOverhead int `yaml:"per_file_overhead"`
}

// CacheConfig contains summary cache settings.
type CacheConfig struct {
	// Backend selects the cache implementation: memory, sqlite, or off.
	Backend string        `yaml:"backend"`
	TTL     time.Duration `yaml:"ttl"`
	// Path is the sqlite database file (sqlite backend only).
	Path string `yaml:"path"`
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}
