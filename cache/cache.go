// Package cache stores encoded build artifacts in a sqlite database, keyed by
// a hash of the source and the options it was compiled with.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tliron/commonlog"
	_ "modernc.org/sqlite"
)

var log = commonlog.GetLogger("dpp.cache")

type Cache struct {
	db   *sql.DB
	path string
}

// Open opens the cache at path, creating the file and its directory when
// missing.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS builds (
		key        TEXT PRIMARY KEY,
		data       BLOB NOT NULL,
		created_at INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	log.Debugf("opened cache %s", path)
	return &Cache{db: db, path: path}, nil
}

func (c *Cache) Path() string {
	return c.path
}

// Get returns the data stored under key. A miss is not an error.
func (c *Cache) Get(key string) ([]byte, bool, error) {
	var data []byte
	err := c.db.QueryRow("SELECT data FROM builds WHERE key = ?", key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debugf("cache miss %s", key)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("querying cache: %w", err)
	}
	log.Debugf("cache hit %s", key)
	return data, true, nil
}

// Put stores data under key, replacing any previous entry.
func (c *Cache) Put(key string, data []byte) error {
	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO builds (key, data, created_at) VALUES (?, ?, ?)",
		key, data, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("saving cache entry: %w", err)
	}
	return nil
}

func (c *Cache) Delete(key string) error {
	if _, err := c.db.Exec("DELETE FROM builds WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting cache entry: %w", err)
	}
	return nil
}

func (c *Cache) Len() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM builds").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cache entries: %w", err)
	}
	return n, nil
}

// Clear drops every entry.
func (c *Cache) Clear() error {
	if _, err := c.db.Exec("DELETE FROM builds"); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
