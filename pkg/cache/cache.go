// Copyright 2026 Repo AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package cache provides TTL caching for summarization results.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/config"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/errors"
)

// Cache is the summary cache interface.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}

// Entry represents a cache entry.
type Entry struct {
	Key       string
	Value     []byte
	ExpiresAt time.Time
}

// CacheError represents a cache error.
type CacheError struct {
	Code string
}

func (e *CacheError) Error() string {
	return e.Code
}

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = &CacheError{Code: "CACHE_MISS"}

// New builds the cache backend selected in configuration.
func New(cfg config.CacheConfig) (Cache, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "memory":
		return NewMemoryCache(), nil
	case "sqlite":
		return NewSQLiteCache(cfg.Path)
	case "off":
		return NewNoopCache(), nil
	default:
		return nil, errors.ConfigError("unknown cache backend: "+cfg.Backend, nil)
	}
}

// NoopCache satisfies Cache without storing anything, for deployments
// that disable caching.
type NoopCache struct{}

// NewNoopCache creates a disabled cache.
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (n *NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(ctx context.Context, key string) error { return nil }

func (n *NoopCache) Clear(ctx context.Context) error { return nil }

func (n *NoopCache) Close() error { return nil }
