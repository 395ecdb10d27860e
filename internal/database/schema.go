package database

import "fmt"

// EnsureSchema creates the four relations if they are absent. It is
// safe to call on every process start and never drops or alters
// existing data.
func (d *DB) EnsureSchema() error {
	_, err := d.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			name TEXT,
			password_hash TEXT NOT NULL,
			salt TEXT NOT NULL DEFAULT '',
			created_at TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	_, err = d.Exec(`
		CREATE TABLE IF NOT EXISTS decks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			subtitle TEXT,
			progress REAL DEFAULT 0,
			icon TEXT,
			cards_per_day INTEGER,
			user_id TEXT NOT NULL,
			card_count_today INTEGER DEFAULT 0,
			last_updated TEXT,
			FOREIGN KEY (user_id) REFERENCES users (id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create decks table: %w", err)
	}

	_, err = d.Exec(`
		CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			front TEXT NOT NULL,
			back TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			front_image TEXT NOT NULL DEFAULT '',
			back_image TEXT NOT NULL DEFAULT '',
			deck_id TEXT NOT NULL,
			FOREIGN KEY (deck_id) REFERENCES decks (id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create cards table: %w", err)
	}

	// user_id references users.id but carries no constraint: account
	// deletion leaves location cards in place (see DeleteUserAndAllData),
	// and an enforced foreign key would reject that.
	_, err = d.Exec(`
		CREATE TABLE IF NOT EXISTS location_cards (
			id TEXT PRIMARY KEY,
			title TEXT,
			question TEXT,
			answer TEXT,
			notes TEXT NOT NULL DEFAULT '',
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			user_id TEXT NOT NULL,
			created_at TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create location_cards table: %w", err)
	}

	return nil
}
