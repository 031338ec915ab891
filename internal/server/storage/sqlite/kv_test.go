package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/phrasesync/internal/server/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func TestStorage_ImplementsRemoteStore(t *testing.T) {
	var _ storage.RemoteStore = (*Storage)(nil)
}

func TestStorage_GetMissingKey(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	value, err := s.Get(ctx, storage.PhrasesKey("nobody123"))
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	assert.Empty(t, value)
}

func TestStorage_SetAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "empty collection", key: "phrases:abc123", value: "[]"},
		{name: "single phrase", key: "phrases:def456", value: `[{"id":"1","english":"Hello"}]`},
		{name: "unicode", key: "phrases:ghi789", value: `[{"vietnamese":"Xin chào"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, tt.key, tt.value))

			got, err := s.Get(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestStorage_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	key := storage.PhrasesKey("abc123")
	require.NoError(t, s.Set(ctx, key, `[{"id":"1"}]`))
	require.NoError(t, s.Set(ctx, key, `[]`))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	var count int
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv_store`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestStorage_KeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.Set(ctx, "phrases:aaaaaa", "a"))
	require.NoError(t, s.Set(ctx, "phrases:bbbbbb", "b"))

	a, err := s.Get(ctx, "phrases:aaaaaa")
	require.NoError(t, err)
	b, err := s.Get(ctx, "phrases:bbbbbb")
	require.NoError(t, err)

	assert.Equal(t, "a", a)
	assert.Equal(t, "b", b)
}

func TestStorage_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Set(ctx, fmt.Sprintf("phrases:key%04d", i), fmt.Sprintf("v%d", i)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		got, err := s.Get(ctx, fmt.Sprintf("phrases:key%04d", i))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("v%d", i), got)
	}
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "phrases.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "phrases:abc123", `[{"id":"1"}]`))
	require.NoError(t, s.Close())

	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, "phrases:abc123")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, got)
}

func TestStorage_Ping(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	assert.NoError(t, s.Ping(context.Background()))
}
