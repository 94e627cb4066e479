// Package localdemo persists demo requests to an embedded sqlite file. It is
// used when the remote store is not configured or rejects an insert.
package localdemo

import (
	"context"
	"os"
	"path/filepath"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/config"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/core"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/db"
	errs "github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/errors"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Store is the sqlite-backed fallback store.
type Store struct {
	cfg    config.LocalStoreConfig
	logger lumber.Logger
}

// New returns a new local demo request store. Nothing is opened until Save.
func New(cfg config.LocalStoreConfig, logger lumber.Logger) *Store {
	return &Store{cfg: cfg, logger: logger}
}

// ResolveDatabasePath picks the sqlite file location: the configured override
// directory, else the temp directory on restricted filesystems, else the
// project data directory. It does not touch the filesystem.
func ResolveDatabasePath(cfg config.LocalStoreConfig) string {
	if cfg.Dir != "" {
		return filepath.Join(cfg.Dir, constants.LocalDatabaseFileName)
	}
	if cfg.Ephemeral {
		return filepath.Join(os.TempDir(), constants.LocalDataDirName, constants.LocalDatabaseFileName)
	}
	projectDir := cfg.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}
	return filepath.Join(projectDir, constants.LocalDataDirName, constants.LocalDatabaseFileName)
}

// Path returns the database file this store writes to.
func (s *Store) Path() string {
	return ResolveDatabasePath(s.cfg)
}

// Open returns a fresh connection with the demo_requests table in place.
// The caller owns the handle and must close it.
func (s *Store) Open(ctx context.Context) (*sqlx.DB, error) {
	conn, err := db.OpenSQLite(ctx, s.Path())
	if err != nil {
		return nil, err
	}
	if _, err := conn.ExecContext(ctx, createTableQuery); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(errs.SQLError(err), "ensure demo_requests table")
	}
	return conn, nil
}

// Save inserts one row. created_at comes from the sqlite clock, not the caller.
// Each call opens and closes its own handle.
func (s *Store) Save(ctx context.Context, fullName, email string) (*core.DemoRequest, error) {
	conn, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			s.logger.Errorf("error while closing local demo store, %v", cerr)
		}
	}()

	row := &core.DemoRequest{FullName: fullName, Email: email}
	if err := conn.QueryRowxContext(ctx, insertDemoRequestQuery, fullName, email).Scan(&row.ID, &row.CreatedAt); err != nil {
		return nil, errors.Wrap(errs.SQLError(err), "insert demo request")
	}
	return row, nil
}

const createTableQuery = `
CREATE TABLE IF NOT EXISTS demo_requests (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL,
	created_at TEXT NOT NULL
)`

const insertDemoRequestQuery = `
INSERT
	INTO
	demo_requests(full_name,
	email,
	created_at)
VALUES (?,
		?,
		strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
RETURNING CAST(id AS TEXT), created_at
`
