package storage

import (
	"context"

	"github.com/iudanet/phrasesync/internal/models"
)

//go:generate moq -out localcache_mock.go . LocalCache

// Ключи Local Cache
const (
	SyncKeyKey = "viet-sync-key"
	PhrasesKey = "viet-phrases"
)

// LocalCache defines durable device-local storage of the sync key and
// the phrase collection. Writes are synchronous: once StorePhrases returns
// nil the collection survives a restart.
type LocalCache interface {
	// LoadSyncKey returns the stored sync key
	// Returns ErrSyncKeyNotFound if none was stored
	LoadSyncKey(ctx context.Context) (string, error)

	// StoreSyncKey overwrites the stored sync key
	StoreSyncKey(ctx context.Context, key string) error

	// LoadPhrases returns the stored collection
	// Returns ErrPhrasesNotFound if none was stored
	LoadPhrases(ctx context.Context) (models.PhraseCollection, error)

	// StorePhrases overwrites the stored collection
	// Returns ErrQuotaExceeded if it does not fit; the previous value is kept
	StorePhrases(ctx context.Context, phrases models.PhraseCollection) error
}
