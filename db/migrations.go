package db

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Migrate runs all table creation statements. Safe to call multiple times
// due to IF NOT EXISTS clauses.
func Migrate(db *sql.DB) error {
	slog.Info("running database migrations")

	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w\nstatement: %s", err, stmt)
		}
	}

	slog.Info("database migrations complete")
	return nil
}

var migrations = []string{
	// seq keeps insertion order for listings
	`CREATE SEQUENCE IF NOT EXISTS categories_seq START 1`,
	`CREATE SEQUENCE IF NOT EXISTS contacts_seq START 1`,

	// Categories: name uniqueness is checked by the store, case-sensitively
	`CREATE TABLE IF NOT EXISTS categories (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		seq BIGINT NOT NULL DEFAULT nextval('categories_seq')
	)`,

	// Contacts: category_id is checked by the handlers, deletion of a
	// referenced category is blocked by the store
	`CREATE TABLE IF NOT EXISTS contacts (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		surname VARCHAR NOT NULL,
		bio VARCHAR NOT NULL,
		phone_number VARCHAR NOT NULL,
		email VARCHAR NOT NULL,
		address VARCHAR NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		category_id VARCHAR NOT NULL,
		seq BIGINT NOT NULL DEFAULT nextval('contacts_seq')
	)`,
}
