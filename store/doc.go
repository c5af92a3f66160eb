// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists menu submissions.

# Backends

  - SQLStore: SQLite (modernc.org/sqlite) or PostgreSQL (lib/pq)
  - MongoStore: MongoDB, collection menu_submissions

Open picks one from the configuration:

	st, err := store.Open(ctx, cfg)
	defer st.Close(ctx)

# Contract

Create stamps created_at with the current UTC time and returns an opaque
string ID. List returns newest first, ties broken by newest ID, and an
empty non-nil slice when nothing matches. Every backend failure wraps
ErrStorage.
*/
package store
