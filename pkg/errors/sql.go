package errors

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDupeKey is returned when a unique index prevents a value from being
// inserted or updated.
var ErrDupeKey = New("resource already exits")

// ErrLockWaitTimeout is returned when the database stays locked past the busy timeout.
var ErrLockWaitTimeout = New("database lock wait timeout")

// ErrDiskFull is returned when the database file cannot grow.
var ErrDiskFull = New("database disk full")

// ErrReadOnly is returned when the database file or its directory is not writable.
var ErrReadOnly = New("database is read only")

// ErrCantOpen is returned when the database file cannot be opened or created.
var ErrCantOpen = New("unable to open database file")

// ErrRowsNotFound is returned by Scan when QueryRow doesn't return a
// row.
var ErrRowsNotFound = sql.ErrNoRows

// postgres SQLSTATE codes
const (
	pgUniqueViolation   = "23505"
	pgDeadlockDetected  = "40P01"
	pgLockNotAvailable  = "55P03"
	pgInsufficientSpace = "53100"
)

// sqliteCoder is satisfied by *sqlite.Error from modernc.org/sqlite.
type sqliteCoder interface {
	error
	Code() int
}

// StoreError wraps a driver error with the sentinel it maps to, so that
// errors.Is matches the sentinel while the driver message stays visible.
type StoreError struct {
	Kind  error
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind.Error(), e.Cause)
}

// Is matches the mapped sentinel.
func (e *StoreError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the driver error.
func (e *StoreError) Unwrap() error {
	return e.Cause
}

// SQLError returns an error in this package if possible. The error return value
// wraps a sentinel of this package if the given error maps to one, else the given
// error is returned.
func SQLError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRowsNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgError(pgErr)
	}
	var liteErr sqliteCoder
	if errors.As(err, &liteErr) {
		return sqliteError(liteErr)
	}
	return err
}

func pgError(err *pgconn.PgError) error {
	switch err.Code {
	case pgUniqueViolation:
		return &StoreError{Kind: ErrDupeKey, Cause: err}
	case pgDeadlockDetected, pgLockNotAvailable:
		return &StoreError{Kind: ErrLockWaitTimeout, Cause: err}
	case pgInsufficientSpace:
		return &StoreError{Kind: ErrDiskFull, Cause: err}
	}
	return err
}

func sqliteError(err sqliteCoder) error {
	// extended result codes carry the primary code in the low byte
	switch err.Code() & 0xff {
	case sqlite3.SQLITE_CONSTRAINT:
		return &StoreError{Kind: ErrDupeKey, Cause: err}
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return &StoreError{Kind: ErrLockWaitTimeout, Cause: err}
	case sqlite3.SQLITE_FULL:
		return &StoreError{Kind: ErrDiskFull, Cause: err}
	case sqlite3.SQLITE_READONLY:
		return &StoreError{Kind: ErrReadOnly, Cause: err}
	case sqlite3.SQLITE_CANTOPEN:
		return &StoreError{Kind: ErrCantOpen, Cause: err}
	}
	return err
}
