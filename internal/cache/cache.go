// Package cache provides a SQLite-backed render cache so unchanged lectures
// skip markdown conversion on rebuilds.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// RenderCache maps a lecture slug plus content hash to previously rendered
// HTML. A nil *RenderCache is valid and behaves as a cache that never hits.
type RenderCache struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens (creating if necessary) a render cache at path. Use ":memory:"
// for an ephemeral cache.
func Open(path string) (*RenderCache, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	c := &RenderCache{db: db}
	if err := c.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize cache schema: %w", err)
	}
	return c, nil
}

func (c *RenderCache) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pages (
		slug TEXT PRIMARY KEY,
		hash TEXT NOT NULL,
		html BLOB NOT NULL,
		updated INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := c.db.Exec(schema)
	return err
}

// Close releases the underlying database.
func (c *RenderCache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

// EnsureSignature compares the stored site signature with sig and flushes all
// cached pages when they differ. A changed signature means the pipeline
// itself changed, so every cached page is stale.
func (c *RenderCache) EnsureSignature(ctx context.Context, sig string) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var stored string
	err := c.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = 'signature'").Scan(&stored)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("read cache signature: %w", err)
	}
	if stored == sig {
		return nil
	}

	if _, err := c.db.ExecContext(ctx, "DELETE FROM pages"); err != nil {
		return fmt.Errorf("flush cache: %w", err)
	}
	if _, err := c.db.ExecContext(ctx,
		"INSERT INTO meta (key, value) VALUES ('signature', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		sig,
	); err != nil {
		return fmt.Errorf("store cache signature: %w", err)
	}
	return nil
}

// Get returns the cached HTML for slug when its stored content hash matches.
func (c *RenderCache) Get(ctx context.Context, slug, hash string) ([]byte, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	var storedHash string
	var html []byte
	err := c.db.QueryRowContext(ctx, "SELECT hash, html FROM pages WHERE slug = ?", slug).Scan(&storedHash, &html)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cached page: %w", err)
	}
	if storedHash != hash {
		return nil, false, nil
	}
	return html, true, nil
}

// Put stores rendered HTML for slug under the given content hash.
func (c *RenderCache) Put(ctx context.Context, slug, hash string, html []byte) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO pages (slug, hash, html, updated) VALUES (?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET hash = excluded.hash, html = excluded.html, updated = excluded.updated`,
		slug, hash, html, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("store cached page: %w", err)
	}
	return nil
}

// ContentHash computes a deterministic hash over the given byte slices.
func ContentHash(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// SiteSignature computes a signature over everything that influences page
// rendering besides lecture content: the serialized config, the theme
// version, and the ordered transform set. Transform names are sorted for
// determinism.
func SiteSignature(configBytes []byte, themeVersion string, transforms []string) string {
	sorted := make([]string, len(transforms))
	copy(sorted, transforms)
	sort.Strings(sorted)

	h := sha256.New()
	h.Write(configBytes)
	h.Write([]byte{0})
	h.Write([]byte(themeVersion))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(sorted, ",")))
	return hex.EncodeToString(h.Sum(nil))
}
