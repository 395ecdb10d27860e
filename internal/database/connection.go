package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/flashdeck/internal/config"
)

// DB wraps the shared database handle. Repositories receive it
// explicitly; there is no package-level connection.
type DB struct {
	*sqlx.DB
}

// Connect opens the configured database, applies connection settings
// and ensures the schema exists. For sqlite the DSN is a file path
// (":memory:" for an in-memory store); for postgres it is a connection URL.
func Connect(cfg *config.Config) (*DB, error) {
	if cfg.Driver == "sqlite3" && cfg.DSN != ":memory:" {
		if dir := filepath.Dir(cfg.DSN); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	db, err := sqlx.Connect(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver == "sqlite3" {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	d := &DB{db}
	if err := d.EnsureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.DB.Close()
}

// nowISO returns the current time as an ISO-8601 string. All timestamps
// are persisted in this format.
func nowISO() string {
	return time.Now().Format(time.RFC3339)
}

// sameDay reports whether the ISO-8601 timestamp falls on today's
// calendar date in the process's local time zone. Unparseable or empty
// values count as a different day so the daily counter gets reset.
func sameDay(iso string) bool {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return false
	}
	return t.In(time.Local).Format("2006-01-02") == time.Now().Format("2006-01-02")
}
