// Package remotedemo writes demo requests to the managed supabase database,
// either through its REST endpoint or over a direct postgres connection.
package remotedemo

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/core"
	errs "github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/errors"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/supabase"
	"github.com/jmoiron/sqlx"
)

// inserter is implemented by *supabase.Client.
type inserter interface {
	Insert(ctx context.Context, table string, rows interface{}) error
}

type restStore struct {
	client inserter
	table  string
	logger lumber.Logger
}

// NewREST returns a remote store backed by the PostgREST endpoint.
func NewREST(client *supabase.Client, table string, logger lumber.Logger) core.RemoteDemoStore {
	return &restStore{client: client, table: table, logger: logger}
}

func (r *restStore) Create(ctx context.Context, req *core.DemoRequest) error {
	return r.client.Insert(ctx, r.table, []*core.DemoRequest{req})
}

type postgresStore struct {
	db     core.DB
	table  string
	logger lumber.Logger
}

// NewPostgres returns a remote store that inserts over a direct connection.
func NewPostgres(db core.DB, table string, logger lumber.Logger) core.RemoteDemoStore {
	return &postgresStore{db: db, table: table, logger: logger}
}

func (p *postgresStore) Create(ctx context.Context, req *core.DemoRequest) error {
	query, args, err := sq.Insert(p.table).
		Columns("id", "full_name", "email", "created_at").
		Values(req.ID, req.FullName, req.Email, req.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	return p.db.Execute(func(db *sqlx.DB) error {
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return errs.SQLError(err)
		}
		return nil
	})
}

// Close releases the connection pool.
func (p *postgresStore) Close() error {
	return p.db.Close()
}
