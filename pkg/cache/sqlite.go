package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore is a Store backed by a SQLite database file, so cached
// responses survive process restarts.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the cache database at dbPath and
// initializes the cache table.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := initTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache tables: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS response_cache (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			cache_key TEXT UNIQUE NOT NULL,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			expires_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_response_cache_key ON response_cache(cache_key)`,
		`CREATE INDEX IF NOT EXISTS idx_response_cache_expires ON response_cache(expires_at)`,
	}
	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the cached payload for key if it has not expired.
func (s *SQLiteStore) Get(key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRow(
		`SELECT data FROM response_cache WHERE cache_key = ? AND expires_at > ?`,
		key, time.Now(),
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query cache: %w", err)
	}
	return data, true, nil
}

// Set stores a payload under key for the given TTL, replacing any
// previous entry.
func (s *SQLiteStore) Set(key string, data []byte, ttl time.Duration) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO response_cache (cache_key, data, created_at, expires_at)
		 VALUES (?, ?, ?, ?)`,
		key, data, time.Now(), time.Now().Add(ttl),
	)
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

// Cleanup deletes expired entries and returns how many were removed.
func (s *SQLiteStore) Cleanup() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM response_cache WHERE expires_at <= ?`, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to clean up cache: %w", err)
	}
	return result.RowsAffected()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
