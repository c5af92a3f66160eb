// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles relational schema creation.

# Schema Creation

CreateSchema initializes the submissions table for a dialect:

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and indexes.

# Tables

  - menu_submissions: one row per submitted form

menu_feedback holds the day -> meal -> {suggestion, opinion} mapping as
JSON text. created_at holds a fixed-width UTC timestamp
(2006-01-02T15:04:05.000000Z) so ORDER BY created_at sorts by time in
both SQLite and PostgreSQL.

# Indexes

  - menu_submissions.email
  - menu_submissions.created_at
*/
package db
