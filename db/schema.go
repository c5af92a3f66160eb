// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Supported SQL dialects
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	var schema string
	switch dialect {
	case DialectSQLite:
		schema = sqliteSchema
	case DialectPostgres:
		schema = postgresSchema
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// created_at is fixed-width UTC text so string order is time order
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS menu_submissions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    room TEXT NOT NULL,
    menu_feedback TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_menu_submissions_email ON menu_submissions(email);
CREATE INDEX IF NOT EXISTS idx_menu_submissions_created_at ON menu_submissions(created_at);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS menu_submissions (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    room TEXT NOT NULL,
    menu_feedback TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_menu_submissions_email ON menu_submissions(email);
CREATE INDEX IF NOT EXISTS idx_menu_submissions_created_at ON menu_submissions(created_at);
`
