package storage

import "context"

//go:generate moq -out remotestore_mock.go . RemoteStore

// PhrasesKeyPrefix префикс ключей, под которыми хранятся коллекции фраз
const PhrasesKeyPrefix = "phrases:"

// RemoteStore defines interface for the key/value persistence service
// Values are opaque strings, the store never interprets them.
type RemoteStore interface {
	// Get returns value stored under key
	// Returns ErrKeyNotFound if key doesn't exist
	Get(ctx context.Context, key string) (string, error)

	// Set unconditionally overwrites value stored under key
	Set(ctx context.Context, key, value string) error

	// Ping checks that backend is reachable
	Ping(ctx context.Context) error

	// Close releases backend resources
	Close() error
}

// PhrasesKey возвращает ключ коллекции фраз для sync key
func PhrasesKey(syncKey string) string {
	return PhrasesKeyPrefix + syncKey
}
