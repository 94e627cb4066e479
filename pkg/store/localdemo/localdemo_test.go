package localdemo

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/config"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/core"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(config.LocalStoreConfig{Dir: t.TempDir()}, lumber.FromZap(zap.NewNop()))
}

func countRows(t *testing.T, s *Store) []core.DemoRequest {
	t.Helper()
	conn, err := s.Open(context.Background())
	require.NoError(t, err)
	defer conn.Close()
	var rows []core.DemoRequest
	require.NoError(t, conn.Select(&rows, `SELECT CAST(id AS TEXT) AS id, full_name, email, created_at FROM demo_requests ORDER BY id`))
	return rows
}

func TestResolveDatabasePath(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LocalStoreConfig
		want string
	}{
		{
			name: "override_wins",
			cfg:  config.LocalStoreConfig{Dir: "/srv/leads", Ephemeral: true, ProjectDir: "/app"},
			want: filepath.Join("/srv/leads", "demo.db"),
		},
		{
			name: "restricted_filesystem_uses_temp",
			cfg:  config.LocalStoreConfig{Ephemeral: true, ProjectDir: "/app"},
			want: filepath.Join(os.TempDir(), "data", "demo.db"),
		},
		{
			name: "project_data_dir",
			cfg:  config.LocalStoreConfig{ProjectDir: "/app"},
			want: filepath.Join("/app", "data", "demo.db"),
		},
		{
			name: "empty_project_dir_is_cwd",
			cfg:  config.LocalStoreConfig{},
			want: filepath.Join("data", "demo.db"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDatabasePath(tt.cfg))
		})
	}
}

func TestResolveDatabasePathDoesNotCreateAnything(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not-yet")
	_ = ResolveDatabasePath(config.LocalStoreConfig{Dir: dir})
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 2; i++ {
		conn, err := s.Open(context.Background())
		require.NoError(t, err)
		var name string
		require.NoError(t, conn.Get(&name, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, constants.DemoRequestsTable))
		assert.Equal(t, constants.DemoRequestsTable, name)
		require.NoError(t, conn.Close())
	}
}

func TestSave(t *testing.T) {
	s := newTestStore(t)
	start := time.Now().UTC().Truncate(time.Millisecond)

	got, err := s.Save(context.Background(), "Ada Lovelace", "ada@example.com")
	require.NoError(t, err)

	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "Ada Lovelace", got.FullName)
	assert.Equal(t, "ada@example.com", got.Email)
	createdAt, err := time.Parse(constants.RemoteTimestampLayout, got.CreatedAt)
	require.NoError(t, err)
	assert.False(t, createdAt.Before(start), "created_at %s before %s", createdAt, start)

	rows := countRows(t, s)
	require.Len(t, rows, 1)
	assert.Equal(t, *got, rows[0])
}

func TestSaveTwiceKeepsBothRows(t *testing.T) {
	s := newTestStore(t)
	first, err := s.Save(context.Background(), "Ada Lovelace", "ada@example.com")
	require.NoError(t, err)
	second, err := s.Save(context.Background(), "Ada Lovelace", "ada@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, countRows(t, s), 2)
}

func TestSaveConcurrentWriters(t *testing.T) {
	s := newTestStore(t)
	const writers = 8
	var wg sync.WaitGroup
	errCh := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Save(context.Background(), "Grace Hopper", "grace@example.com")
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}
	assert.Len(t, countRows(t, s), writers)
}

func TestSaveFailsWhenDirectoryUnusable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	s := New(config.LocalStoreConfig{Dir: filepath.Join(blocker, "leads")}, lumber.FromZap(zap.NewNop()))

	got, err := s.Save(context.Background(), "Ada Lovelace", "ada@example.com")
	require.Error(t, err)
	assert.Nil(t, got)
}
