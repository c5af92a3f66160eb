// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/makeurownmenu/cliparse"
	"github.com/danielhkuo/makeurownmenu/db"
	"github.com/danielhkuo/makeurownmenu/models"
)

// ErrStorage wraps every failure coming from the underlying database
var ErrStorage = errors.New("storage error")

// Store persists menu submissions
type Store interface {
	// Create saves a new submission stamped with the current time and
	// returns its ID
	Create(ctx context.Context, user models.User, feedback models.MenuFeedback) (string, error)

	// List returns submissions newest first. A non-empty email returns only
	// exact matches.
	List(ctx context.Context, email string) ([]models.Submission, error)

	Close(ctx context.Context) error
}

// Open connects the backend selected by cfg.DatabaseType
func Open(ctx context.Context, cfg cliparse.Config) (Store, error) {
	var s Store
	var err error
	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite:
		s, err = OpenSQL(db.DialectSQLite, cfg.DatabaseURL)
	case cliparse.DatabasePostgres:
		s, err = OpenSQL(db.DialectPostgres, cfg.DatabaseURL)
	case cliparse.DatabaseMongo:
		s, err = OpenMongo(ctx, cfg.DatabaseURL, cfg.MongoDatabase, cfg.StoreTimeout)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
