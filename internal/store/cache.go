// Package store provides a SQLite-backed cache for raw API payloads. It only
// memoizes what the network returned; freshness policy belongs to the caller
// and the aggregation engine never sees this layer.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache stores raw feed payloads keyed by organization (and billing period).
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// SaveMetrics stores the raw metrics payload for an org, replacing any
// previous payload.
func (c *Cache) SaveMetrics(org string, payload []byte) error {
	_, err := c.db.Exec(`INSERT OR REPLACE INTO metrics_payloads (org, payload, fetched_at)
		VALUES (?, ?, ?)`,
		org, payload, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetMetrics returns the cached metrics payload for an org and when it was
// fetched. ok is false when nothing is cached.
func (c *Cache) GetMetrics(org string) (payload []byte, fetchedAt time.Time, ok bool, err error) {
	var fetchedStr string
	err = c.db.QueryRow(`SELECT payload, fetched_at FROM metrics_payloads WHERE org = ?`, org).
		Scan(&payload, &fetchedStr)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, err
	}

	fetchedAt, _ = time.Parse(time.RFC3339, fetchedStr)
	return payload, fetchedAt, true, nil
}

// SavePremium stores the raw premium billing payload for one org and month.
func (c *Cache) SavePremium(org string, year, month int, payload []byte) error {
	_, err := c.db.Exec(`INSERT OR REPLACE INTO premium_payloads (org, year, month, payload, fetched_at)
		VALUES (?, ?, ?, ?, ?)`,
		org, year, month, payload, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetPremium returns the cached premium payload for one org and month.
func (c *Cache) GetPremium(org string, year, month int) (payload []byte, fetchedAt time.Time, ok bool, err error) {
	var fetchedStr string
	err = c.db.QueryRow(`SELECT payload, fetched_at FROM premium_payloads
		WHERE org = ? AND year = ? AND month = ?`, org, year, month).
		Scan(&payload, &fetchedStr)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, err
	}

	fetchedAt, _ = time.Parse(time.RFC3339, fetchedStr)
	return payload, fetchedAt, true, nil
}

// Clear drops every cached payload.
func (c *Cache) Clear() error {
	if _, err := c.db.Exec(`DELETE FROM metrics_payloads`); err != nil {
		return err
	}
	_, err := c.db.Exec(`DELETE FROM premium_payloads`)
	return err
}
