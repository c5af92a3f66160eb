// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the menu feedback API server.

Hostel residents suggest dishes and give opinions for every meal of the
week. The server stores those submissions and serves the statistics shown
on the dashboard.

# Starting the Server

The server reads CLI flags, environment variables, and a .env file:

	DATABASE_URL=menu.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."
	go run . -t mongo -d "mongodb://localhost:27017" -mongo-db MakeUrOwnMenu

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path, PostgreSQL URL or MongoDB URI

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or mongo (default: sqlite)
  - SUBMIT_RATE (-submit-rate): Submissions per second (default: 20)
  - SENTRY_DSN (-sentry-dsn): Error reporting, disabled when empty

# Architecture

  - handlers: HTTP request handlers (submissions, stats, menu)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request IDs, CORS, logging, rate limiting, recovery
  - store: Submission persistence (SQL or MongoDB)
  - aggregate: Dashboard statistics
  - catalog: Weekly menu
  - form, client: Submission form model and API client
  - models: Request/response types
  - db: Relational schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
