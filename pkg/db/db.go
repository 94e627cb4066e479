package db

import (
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
	"github.com/jmoiron/sqlx"
)

// DB is a pool of zero or more underlying connections to
// a demo request database.
type DB struct {
	conn   *sqlx.DB
	logger lumber.Logger
}

// New wraps an open sqlx pool.
func New(conn *sqlx.DB, logger lumber.Logger) *DB {
	return &DB{conn: conn, logger: logger}
}

// Execute and executes a function. Any error that is returned from the function is returned
// from the Execute() method.
func (db *DB) Execute(fn func(conn *sqlx.DB) error) (err error) {
	err = fn(db.conn)
	return err
}

// Close closes the database connection.
func (db *DB) Close() error {
	db.logger.Debugf("closing database pool")
	return db.conn.Close()
}
