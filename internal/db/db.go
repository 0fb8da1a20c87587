package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the forecast cache database.
type DB struct {
	*sql.DB
}

// Open opens (or creates) the sqlite cache at path and initializes the
// schema. Use ":memory:" for an ephemeral cache.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection keeps writes serialized and makes :memory: databases
	// share their schema across calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &DB{db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS forecast_cache (
			latitude   REAL NOT NULL,
			longitude  REAL NOT NULL,
			data       TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			PRIMARY KEY (latitude, longitude)
		)
	`)
	return err
}

// CachedForecast is one cache entry; Data is the JSON-encoded result blob.
type CachedForecast struct {
	Data      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// GetForecast returns the unexpired cache entry for a coordinate, or nil
// on a miss.
func (d *DB) GetForecast(lat, lon float64) (*CachedForecast, error) {
	var cf CachedForecast
	err := d.QueryRow(
		"SELECT data, created_at, expires_at FROM forecast_cache WHERE latitude = ? AND longitude = ? AND expires_at > ?",
		lat, lon, time.Now(),
	).Scan(&cf.Data, &cf.CreatedAt, &cf.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cf, nil
}

// SetForecast stores (or replaces) the cache entry for a coordinate with
// the given TTL.
func (d *DB) SetForecast(lat, lon float64, data string, ttl time.Duration) error {
	now := time.Now()
	_, err := d.Exec(
		"INSERT OR REPLACE INTO forecast_cache (latitude, longitude, data, created_at, expires_at) VALUES (?, ?, ?, ?, ?)",
		lat, lon, data, now, now.Add(ttl),
	)
	return err
}
