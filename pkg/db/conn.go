package db

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/core"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
	"github.com/pkg/errors"

	// postgres driver registered as "pgx"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	// pure go sqlite driver registered as "sqlite"
	_ "modernc.org/sqlite"
)

const (
	sqliteDriver   = "sqlite"
	postgresDriver = "pgx"
	dirPerm        = 0o750
)

// SQLiteDSN builds the connection string for a sqlite file with a busy timeout
// and WAL journaling applied to every pooled connection. The timeout goes first
// so that switching the journal mode waits on concurrent openers.
func SQLiteDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", constants.LocalBusyTimeout.Milliseconds()))
	q.Add("_pragma", "journal_mode(WAL)")
	return path + "?" + q.Encode()
}

// OpenSQLite creates the parent directory of path if needed and opens the
// sqlite file, creating it when absent.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, errors.Wrapf(err, "create database directory %s", filepath.Dir(path))
	}
	conn, err := sqlx.Open(sqliteDriver, SQLiteDSN(path))
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// the first ping creates the file and applies the pragmas
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "open sqlite file %s", path)
	}
	return conn, nil
}

// ConnectPostgres returns a pool for the given DSN. No connection is made
// until the first query.
func ConnectPostgres(dsn string, logger lumber.Logger) (core.DB, error) {
	conn, err := sqlx.Open(postgresDriver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	conn.SetMaxIdleConns(constants.PostgresMaxIdleConnection)
	conn.SetMaxOpenConns(constants.PostgresMaxOpenConnection)
	conn.SetConnMaxLifetime(constants.PostgresMaxConnectionLifetime)
	logger.Debugf("postgres pool configured")
	return New(conn, logger), nil
}
