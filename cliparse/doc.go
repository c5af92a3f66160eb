// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite path/DSN, PostgreSQL URL or MongoDB URI (required)
  - DatabaseType: sqlite, postgres or mongo (default: sqlite)
  - MongoDatabase: MongoDB database name (default: MakeUrOwnMenu)
  - SubmitRate: Max accepted submissions per second (default: 20)
  - SentryDSN: Error reporting DSN (optional, disabled when empty)
  - AppEnv: Environment tag for error reports (default: development)
  - StoreTimeout: Per-operation MongoDB timeout (fixed at 5s)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-mongo-db     MongoDB database name
	-submit-rate  Submissions per second
	-sentry-dsn   Sentry DSN
	-env          Deployment environment

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	MONGODB_DATABASE → -mongo-db
	SUBMIT_RATE      → -submit-rate
	SENTRY_DSN       → -sentry-dsn
	APP_ENV          → -env

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing, so values there behave like real
environment variables.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - PORT is not a number or SUBMIT_RATE is not positive
  - DATABASE_TYPE is not sqlite, postgres or mongo

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.Open(ctx, cfg)
	// ...
	menu, err := catalog.Load()
	// ...
	handler := router.NewRouter(st, menu, cfg)
*/
package cliparse
