// Copyright 2026 Repo AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS summaries (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	expires_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_summaries_expires ON summaries(expires_at);
`

// SQLiteCache persists cache entries in a SQLite database so summaries
// survive process restarts.
type SQLiteCache struct {
	db *sql.DB
}

// NewSQLiteCache opens or creates the database at path and ensures the
// schema exists.
func NewSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return &SQLiteCache{db: db}, nil
}

// Get retrieves a value, expiring stale rows lazily.
func (s *SQLiteCache) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var expiresAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM summaries WHERE key = ?", key,
	).Scan(&value, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache read failed: %w", err)
	}

	if time.Now().UnixNano() > expiresAt {
		_, _ = s.db.ExecContext(ctx, "DELETE FROM summaries WHERE key = ?", key)
		return nil, ErrCacheMiss
	}
	return value, nil
}

// Set stores a value with its expiry.
func (s *SQLiteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	expiresAt := time.Now().Add(ttl).UnixNano()
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO summaries (key, value, expires_at) VALUES (?, ?, ?)",
		key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	return nil
}

// Delete removes a single entry.
func (s *SQLiteCache) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM summaries WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("cache delete failed: %w", err)
	}
	return nil
}

// Clear removes all entries.
func (s *SQLiteCache) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM summaries")
	if err != nil {
		return fmt.Errorf("cache clear failed: %w", err)
	}
	return nil
}

// Close closes the database handle.
func (s *SQLiteCache) Close() error {
	return s.db.Close()
}
