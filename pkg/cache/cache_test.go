package cache

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/config"
)

// backends returns every cache implementation under test.
func backends(t *testing.T) map[string]Cache {
	t.Helper()

	sqlite, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewSQLiteCache: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Cache{
		"memory": NewMemoryCache(),
		"sqlite": sqlite,
	}
}

// TestCacheRoundTrip covers set, get, delete, and clear for all backends.
func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := c.Get(ctx, "missing"); err != ErrCacheMiss {
				t.Errorf("Get on empty cache = %v, want ErrCacheMiss", err)
			}

			if err := c.Set(ctx, "k1", []byte("v1"), time.Minute); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := c.Get(ctx, "k1")
			if err != nil || string(got) != "v1" {
				t.Errorf("Get = %q, %v", got, err)
			}

			if err := c.Set(ctx, "k1", []byte("v2"), time.Minute); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}
			got, _ = c.Get(ctx, "k1")
			if string(got) != "v2" {
				t.Errorf("Overwrite not applied, got %q", got)
			}

			if err := c.Delete(ctx, "k1"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := c.Get(ctx, "k1"); err != ErrCacheMiss {
				t.Errorf("Get after delete = %v, want ErrCacheMiss", err)
			}

			c.Set(ctx, "a", []byte("1"), time.Minute)
			c.Set(ctx, "b", []byte("2"), time.Minute)
			if err := c.Clear(ctx); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if _, err := c.Get(ctx, "a"); err != ErrCacheMiss {
				t.Errorf("Get after clear = %v, want ErrCacheMiss", err)
			}
		})
	}
}

// TestCacheExpiry verifies entries expire after their TTL.
func TestCacheExpiry(t *testing.T) {
	ctx := context.Background()

	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := c.Set(ctx, "short", []byte("v"), 10*time.Millisecond); err != nil {
				t.Fatalf("Set: %v", err)
			}
			time.Sleep(30 * time.Millisecond)
			if _, err := c.Get(ctx, "short"); err != ErrCacheMiss {
				t.Errorf("Expired entry Get = %v, want ErrCacheMiss", err)
			}
		})
	}
}

// TestSQLitePersistsAcrossReopen verifies durability of the sqlite backend.
func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	first, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("NewSQLiteCache: %v", err)
	}
	if err := first.Set(ctx, "k", []byte("persisted"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	first.Close()

	second, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "k")
	if err != nil || string(got) != "persisted" {
		t.Errorf("Get after reopen = %q, %v", got, err)
	}
}

// TestNewSelectsBackend verifies the config-driven factory.
func TestNewSelectsBackend(t *testing.T) {
	tests := []struct {
		backend string
		want    string
		wantErr bool
	}{
		{"memory", "*cache.MemoryCache", false},
		{"", "*cache.MemoryCache", false},
		{"off", "*cache.NoopCache", false},
		{"redis", "", true},
	}

	for _, tt := range tests {
		c, err := New(config.CacheConfig{Backend: tt.backend})
		if tt.wantErr {
			if err == nil {
				t.Errorf("Backend %q: expected error", tt.backend)
			}
			continue
		}
		if err != nil {
			t.Errorf("Backend %q: %v", tt.backend, err)
			continue
		}
		switch c.(type) {
		case *MemoryCache:
			if tt.want != "*cache.MemoryCache" {
				t.Errorf("Backend %q gave memory cache", tt.backend)
			}
		case *NoopCache:
			if tt.want != "*cache.NoopCache" {
				t.Errorf("Backend %q gave noop cache", tt.backend)
			}
		}
	}
}

// TestNoopCacheNeverHits verifies the disabled backend.
func TestNoopCacheNeverHits(t *testing.T) {
	ctx := context.Background()
	c := NewNoopCache()

	if err := c.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := c.Get(ctx, "k"); err != ErrCacheMiss {
		t.Errorf("Noop Get = %v, want ErrCacheMiss", err)
	}
}

// TestKeyGenerator verifies stable, prefixed, collision-resistant keys.
func TestKeyGenerator(t *testing.T) {
	kg := NewKeyGenerator()

	k1 := kg.GenerateForRepo("https://github.com/golang/go")
	k2 := kg.GenerateForRepo("https://github.com/golang/go")
	k3 := kg.GenerateForRepo("https://github.com/golang/tools")

	if k1 != k2 {
		t.Error("Same input must give the same key")
	}
	if k1 == k3 {
		t.Error("Different inputs must give different keys")
	}
	if !strings.HasPrefix(k1, "summary:") {
		t.Errorf("Key missing prefix: %s", k1)
	}
}
