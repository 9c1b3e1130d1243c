package config

import (
	"fmt"
	"strings"
)

const (
	// MaxFetchConcurrency bounds concurrent GitHub content fetches to respect
	// API rate limits.
	MaxFetchConcurrency = 16
	// MaxTreeItemsCeiling is the largest allowed tree-items safety cap.
	MaxTreeItemsCeiling = 100000
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validCacheBackends = map[string]bool{
	"memory": true,
	"sqlite": true,
	"off":    true,
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}

	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.GitHub.Validate(); err != nil {
		return fmt.Errorf("github config: %w", err)
	}
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm config: %w", err)
	}
	if err := c.Budget.Validate(); err != nil {
		return fmt.Errorf("budget config: %w", err)
	}
	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache config: %w", err)
	}
	if !validLogLevels[strings.ToLower(c.Global.LogLevel)] {
		return fmt.Errorf("invalid log_level %q (expected debug, info, warn, or error)", c.Global.LogLevel)
	}

	return nil
}

// Validate validates server settings
func (s ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 {
		return fmt.Errorf("read_timeout and write_timeout must be positive")
	}
	return nil
}

// Validate validates GitHub client settings
func (g GitHubConfig) Validate() error {
	if g.APIBase == "" {
		return fmt.Errorf("api_base is required")
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if g.FetchConcurrency <= 0 || g.FetchConcurrency > MaxFetchConcurrency {
		return fmt.Errorf("fetch_concurrency must be in 1..%d, got %d", MaxFetchConcurrency, g.FetchConcurrency)
	}
	if g.MaxTreeItems <= 0 || g.MaxTreeItems > MaxTreeItemsCeiling {
		return fmt.Errorf("max_tree_items must be in 1..%d, got %d", MaxTreeItemsCeiling, g.MaxTreeItems)
	}
	return nil
}

// Validate validates LLM client settings
func (l LLMConfig) Validate() error {
	if l.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if l.Model == "" {
		return fmt.Errorf("model is required")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2], got %v", l.Temperature)
	}
	return nil
}

// Validate validates budget policy values. The selector re-checks the same
// invariants at allocation time so a policy constructed in code is also caught.
func (b BudgetConfig) Validate() error {
	if b.PerFileChars <= 0 {
		return fmt.Errorf("per_file_chars must be positive, got %d", b.PerFileChars)
	}
	if b.TotalChars < b.PerFileChars {
		return fmt.Errorf("total_chars (%d) must be >= per_file_chars (%d)", b.TotalChars, b.PerFileChars)
	}
	if b.ReadmeChars <= 0 || b.ReadmeChars > b.TotalChars {
		return fmt.Errorf("readme_chars (%d) must be in 1..total_chars (%d)", b.ReadmeChars, b.TotalChars)
	}
	if b.OversizedFileBytes <= 0 {
		return fmt.Errorf("oversized_file_bytes must be positive, got %d", b.OversizedFileBytes)
	}
	if b.PerFileOverhead < 0 {
		return fmt.Errorf("per_file_overhead must be non-negative, got %d", b.PerFileOverhead)
	}
	return nil
}

// Validate validates cache settings
func (c CacheConfig) Validate() error {
	if !validCacheBackends[strings.ToLower(c.Backend)] {
		return fmt.Errorf("invalid cache backend %q (expected memory, sqlite, or off)", c.Backend)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be positive")
	}
	if strings.ToLower(c.Backend) == "sqlite" && c.Path == "" {
		return fmt.Errorf("path is required for the sqlite backend")
	}
	return nil
}
