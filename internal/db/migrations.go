package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
// Optional listing fields are NULLable so "never computed" survives a
// round-trip distinct from zero.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS listings (
		id               TEXT PRIMARY KEY,
		batch_id         TEXT    NOT NULL,
		address          TEXT    NOT NULL,
		city             TEXT    NOT NULL DEFAULT '',
		state            TEXT    NOT NULL DEFAULT '',
		zip_code         TEXT    NOT NULL DEFAULT '',
		price            REAL    NOT NULL,
		beds             REAL    NOT NULL DEFAULT 0,
		baths            REAL    NOT NULL DEFAULT 0,
		sqft             REAL    NOT NULL,
		year_built       INTEGER NOT NULL DEFAULT 0,
		days_on_market   INTEGER NOT NULL DEFAULT 0,
		property_type    TEXT    NOT NULL DEFAULT '',
		remarks          TEXT,
		listing_agent    TEXT,
		mls_number       TEXT,
		price_per_sqft   REAL    NOT NULL,
		anomaly_score    REAL,
		estimated_profit REAL,
		estimated_roi    REAL,
		created_at       DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_listings_zip ON listings(zip_code)`,
	`CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
