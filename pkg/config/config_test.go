// Copyright 2026 Repo AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/config"
)

// TestDefaultConfig tests the default configuration.
func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Expected default addr ':8080', got '%s'", cfg.Server.Addr)
	}
	if cfg.GitHub.APIBase != "https://api.github.com" {
		t.Errorf("Expected default API base, got '%s'", cfg.GitHub.APIBase)
	}
	if cfg.Budget.TotalChars != 45000 {
		t.Errorf("Expected default total budget 45000, got %d", cfg.Budget.TotalChars)
	}
	if cfg.Budget.ReadmeChars != 18000 {
		t.Errorf("Expected default readme cap 18000, got %d", cfg.Budget.ReadmeChars)
	}
	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("Expected default cache TTL 10m, got %v", cfg.Cache.TTL)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

// TestLoadFromPath tests loading config from a file.
func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
server:
  addr: ":9090"

budget:
  total_chars: 30000
  per_file_chars: 8000
  readme_chars: 15000

cache:
  backend: sqlite
  path: /tmp/summaries.db
  ttl: 5m

global:
  log_level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Expected addr ':9090', got '%s'", cfg.Server.Addr)
	}
	if cfg.Budget.TotalChars != 30000 {
		t.Errorf("Expected total_chars 30000, got %d", cfg.Budget.TotalChars)
	}
	if cfg.Cache.Backend != "sqlite" {
		t.Errorf("Expected sqlite backend, got '%s'", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("Expected TTL 5m, got %v", cfg.Cache.TTL)
	}
	// Fields absent from the file keep their defaults.
	if cfg.LLM.MaxTokens != 700 {
		t.Errorf("Expected default max_tokens 700, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.Budget.OversizedFileBytes != 80000 {
		t.Errorf("Expected default oversize ceiling 80000, got %d", cfg.Budget.OversizedFileBytes)
	}
}

// TestLoadMissingFile tests loading a non-existent config file.
func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

// TestLoadInvalidYAML tests loading a malformed config file.
func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(configPath, []byte("server: [not a mapping"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := config.Load(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

// TestBudgetValidation covers the budget policy invariants.
func TestBudgetValidation(t *testing.T) {
	tests := []struct {
		name    string
		budget  config.BudgetConfig
		wantErr bool
	}{
		{
			name: "valid",
			budget: config.BudgetConfig{
				TotalChars: 5000, PerFileChars: 4000, ReadmeChars: 4500,
				OversizedFileBytes: 80000, PerFileOverhead: 64,
			},
			wantErr: false,
		},
		{
			name: "per-file cap zero",
			budget: config.BudgetConfig{
				TotalChars: 5000, PerFileChars: 0, ReadmeChars: 4500,
				OversizedFileBytes: 80000,
			},
			wantErr: true,
		},
		{
			name: "total below per-file",
			budget: config.BudgetConfig{
				TotalChars: 3000, PerFileChars: 4000, ReadmeChars: 2000,
				OversizedFileBytes: 80000,
			},
			wantErr: true,
		},
		{
			name: "readme cap above total",
			budget: config.BudgetConfig{
				TotalChars: 5000, PerFileChars: 4000, ReadmeChars: 6000,
				OversizedFileBytes: 80000,
			},
			wantErr: true,
		},
		{
			name: "oversize ceiling zero",
			budget: config.BudgetConfig{
				TotalChars: 5000, PerFileChars: 4000, ReadmeChars: 4500,
				OversizedFileBytes: 0,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.budget.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestEnvOverrides tests REPO_SUMMARIZER_* environment overrides.
func TestEnvOverrides(t *testing.T) {
	t.Setenv("REPO_SUMMARIZER_ADDR", ":7070")
	t.Setenv("REPO_SUMMARIZER_LOG_LEVEL", "warn")
	t.Setenv("REPO_SUMMARIZER_CACHE_TTL", "30s")
	t.Setenv(config.EnvConfigPath, "")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("Expected addr override ':7070', got '%s'", cfg.Server.Addr)
	}
	if cfg.Global.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn', got '%s'", cfg.Global.LogLevel)
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("Expected TTL 30s, got %v", cfg.Cache.TTL)
	}
}

// TestTokenResolution tests token_env indirection.
func TestTokenResolution(t *testing.T) {
	t.Setenv("TEST_GH_TOKEN", "ghp_secret")
	g := config.GitHubConfig{TokenEnv: "TEST_GH_TOKEN"}
	if g.Token() != "ghp_secret" {
		t.Errorf("Token() = %q, want ghp_secret", g.Token())
	}

	empty := config.GitHubConfig{}
	if empty.Token() != "" {
		t.Errorf("Token() with no env var should be empty, got %q", empty.Token())
	}
}
