package remotedemo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/core"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/db"
	errs "github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/errors"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/supabase"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() *core.DemoRequest {
	return &core.DemoRequest{
		ID:        "6f1c2b1e-7c1a-4f55-9d0c-3a4f0e1b2c3d",
		FullName:  "Ada Lovelace",
		Email:     "ada@example.com",
		CreatedAt: "2026-10-19T09:30:00.123Z",
	}
}

func TestRESTCreate(t *testing.T) {
	var got []map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/demo_requests", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	logger, _ := newObservedLogger()
	client, err := supabase.New(srv.URL, "secret")
	require.NoError(t, err)
	store := NewREST(client, "demo_requests", logger)

	require.NoError(t, store.Create(context.Background(), sampleRequest()))
	require.Len(t, got, 1)
	assert.Equal(t, map[string]string{
		"id":         "6f1c2b1e-7c1a-4f55-9d0c-3a4f0e1b2c3d",
		"full_name":  "Ada Lovelace",
		"email":      "ada@example.com",
		"created_at": "2026-10-19T09:30:00.123Z",
	}, got[0])
}

func TestRESTCreateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid API key","hint":"Double check your key"}`))
	}))
	defer srv.Close()

	logger, _ := newObservedLogger()
	client, err := supabase.New(srv.URL, "wrong")
	require.NoError(t, err)

	err = NewREST(client, "demo_requests", logger).Create(context.Background(), sampleRequest())
	var apiErr *supabase.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid API key", apiErr.Message)
}

func newMockDB(t *testing.T) (core.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	logger, _ := newObservedLogger()
	return db.New(sqlx.NewDb(mockDB, "sqlmock"), logger), mock
}

const expectedInsert = `INSERT INTO demo_requests (id,full_name,email,created_at) VALUES ($1,$2,$3,$4)`

func TestPostgresCreate(t *testing.T) {
	conn, mock := newMockDB(t)
	req := sampleRequest()
	mock.ExpectExec(regexp.QuoteMeta(expectedInsert)).
		WithArgs(req.ID, req.FullName, req.Email, req.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	logger, _ := newObservedLogger()
	require.NoError(t, NewPostgres(conn, "demo_requests", logger).Create(context.Background(), req))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateMapsDriverErrors(t *testing.T) {
	conn, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(expectedInsert)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	logger, _ := newObservedLogger()
	err := NewPostgres(conn, "demo_requests", logger).Create(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, errs.ErrDupeKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}
