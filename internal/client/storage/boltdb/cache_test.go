package boltdb

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/phrasesync/internal/client/storage"
	"github.com/iudanet/phrasesync/internal/models"
)

func TestStorage_SyncKey(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t)

	_, err := store.LoadSyncKey(ctx)
	assert.ErrorIs(t, err, storage.ErrSyncKeyNotFound)

	require.NoError(t, store.StoreSyncKey(ctx, "ab12cd34"))
	key, err := store.LoadSyncKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ab12cd34", key)

	require.NoError(t, store.StoreSyncKey(ctx, "joinedKey9"))
	key, err = store.LoadSyncKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "joinedKey9", key)
}

func TestStorage_Phrases(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t)

	_, err := store.LoadPhrases(ctx)
	assert.ErrorIs(t, err, storage.ErrPhrasesNotFound)

	reviewed := int64(1700000100000)
	phrases := models.PhraseCollection{
		{ID: "2", English: "Thank you", Vietnamese: "Cảm ơn", Category: models.CategoryGreetings, CreatedAt: 2, ReviewCount: 1, LastReviewed: &reviewed},
		{ID: "1", English: "Hello", Vietnamese: "Xin chào", Category: models.CategoryGreetings, CreatedAt: 1},
	}
	require.NoError(t, store.StorePhrases(ctx, phrases))

	got, err := store.LoadPhrases(ctx)
	require.NoError(t, err)
	assert.Equal(t, phrases, got)

	// Пустая коллекция хранится как пустая, а не как отсутствующая
	require.NoError(t, store.StorePhrases(ctx, nil))
	got, err = store.LoadPhrases(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.StoreSyncKey(ctx, "persist1"))
	require.NoError(t, store.StorePhrases(ctx, models.PhraseCollection{{ID: "x", English: "Water"}}))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, reopened.Close()) }()

	key, err := reopened.LoadSyncKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persist1", key)

	phrases, err := reopened.LoadPhrases(ctx)
	require.NoError(t, err)
	require.Len(t, phrases, 1)
	assert.Equal(t, "Water", phrases[0].English)
}

func TestStorage_QuotaExceededKeepsPreviousValue(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t, Options{MaxPhrasesBytes: 256})

	small := models.PhraseCollection{{ID: "1", English: "Hi"}}
	require.NoError(t, store.StorePhrases(ctx, small))

	big := models.PhraseCollection{{ID: "2", English: strings.Repeat("a", 500)}}
	err := store.StorePhrases(ctx, big)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrQuotaExceeded)

	got, err := store.LoadPhrases(ctx)
	require.NoError(t, err)
	assert.Equal(t, small, got, "previous value must survive a quota failure")
}

func TestStorage_CorruptPhrases(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCache).Put(phrasesKey, []byte("{broken"))
	})
	require.NoError(t, err)

	_, err = store.LoadPhrases(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrPhrasesNotFound)
}
