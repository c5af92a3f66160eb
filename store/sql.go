// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/makeurownmenu/db"
	"github.com/danielhkuo/makeurownmenu/models"
)

// TimeLayout is how created_at is stored in SQL backends
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// SQLStore keeps submissions in SQLite or PostgreSQL
type SQLStore struct {
	db      *sql.DB
	dialect string
	now     func() time.Time
}

// OpenSQL opens the database, verifies the connection and creates the schema
func OpenSQL(dialect, dsn string) (*SQLStore, error) {
	conn, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect, err)
	}

	if dialect == db.DialectSQLite {
		// One writer at a time; also keeps :memory: databases on a single connection
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dialect, err)
	}

	if err := db.CreateSchema(conn, dialect); err != nil {
		conn.Close()
		return nil, err
	}

	return NewSQLStore(conn, dialect), nil
}

// NewSQLStore wraps an open connection whose schema already exists
func NewSQLStore(conn *sql.DB, dialect string) *SQLStore {
	return &SQLStore{db: conn, dialect: dialect, now: time.Now}
}

// DB exposes the underlying connection
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

func (s *SQLStore) Create(ctx context.Context, user models.User, feedback models.MenuFeedback) (string, error) {
	createdAt := s.now().UTC().Format(TimeLayout)

	var id int64
	err := s.db.QueryRowContext(ctx, s.rebind(`
		INSERT INTO menu_submissions (name, email, room, menu_feedback, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`), user.Name, user.Email, user.Room, feedback, createdAt).Scan(&id)
	if err != nil {
		return "", storageErr("failed to insert submission", err)
	}

	return strconv.FormatInt(id, 10), nil
}

func (s *SQLStore) List(ctx context.Context, email string) ([]models.Submission, error) {
	query := `SELECT id, name, email, room, menu_feedback, created_at FROM menu_submissions`
	var args []interface{}
	if email != "" {
		query += ` WHERE email = ?`
		args = append(args, email)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, storageErr("failed to query submissions", err)
	}
	defer rows.Close()

	subs := []models.Submission{}
	for rows.Next() {
		var sub models.Submission
		var id int64
		var createdAt string
		if err := rows.Scan(&id, &sub.Name, &sub.Email, &sub.Room, &sub.MenuFeedback, &createdAt); err != nil {
			return nil, storageErr("failed to scan submission", err)
		}

		sub.ID = strconv.FormatInt(id, 10)
		sub.CreatedAt, err = time.Parse(TimeLayout, createdAt)
		if err != nil {
			return nil, storageErr("failed to parse created_at", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("failed to read submissions", err)
	}

	return subs, nil
}

func (s *SQLStore) Close(ctx context.Context) error {
	return s.db.Close()
}

// rebind turns ? placeholders into $1, $2, ... for PostgreSQL
func (s *SQLStore) rebind(query string) string {
	if s.dialect != db.DialectPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
