package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/phrasesync/internal/client/storage"
	"github.com/iudanet/phrasesync/internal/models"
)

var (
	syncKeyKey = []byte(storage.SyncKeyKey)
	phrasesKey = []byte(storage.PhrasesKey)
)

// LoadSyncKey returns the stored sync key
func (s *Storage) LoadSyncKey(ctx context.Context) (string, error) {
	var key string

	err := s.view(func(b *bbolt.Bucket) error {
		data := b.Get(syncKeyKey)
		if len(data) == 0 {
			return storage.ErrSyncKeyNotFound
		}
		// Данные bbolt валидны только внутри транзакции
		key = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return key, nil
}

// StoreSyncKey overwrites the stored sync key
func (s *Storage) StoreSyncKey(ctx context.Context, key string) error {
	return s.update(func(b *bbolt.Bucket) error {
		if err := b.Put(syncKeyKey, []byte(key)); err != nil {
			return fmt.Errorf("failed to save sync key: %w", err)
		}
		return nil
	})
}

// LoadPhrases returns the stored collection
func (s *Storage) LoadPhrases(ctx context.Context) (models.PhraseCollection, error) {
	var phrases models.PhraseCollection

	err := s.view(func(b *bbolt.Bucket) error {
		data := b.Get(phrasesKey)
		if data == nil {
			return storage.ErrPhrasesNotFound
		}

		if err := json.Unmarshal(data, &phrases); err != nil {
			return fmt.Errorf("failed to unmarshal phrases: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if phrases == nil {
		phrases = models.PhraseCollection{}
	}
	return phrases, nil
}

// StorePhrases overwrites the stored collection.
// Квота проверяется до записи, поэтому при ErrQuotaExceeded старое значение не меняется.
func (s *Storage) StorePhrases(ctx context.Context, phrases models.PhraseCollection) error {
	if phrases == nil {
		phrases = models.PhraseCollection{}
	}

	data, err := json.Marshal(phrases)
	if err != nil {
		return fmt.Errorf("failed to marshal phrases: %w", err)
	}

	if s.maxBytes > 0 && len(data) > s.maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", storage.ErrQuotaExceeded, len(data), s.maxBytes)
	}

	return s.update(func(b *bbolt.Bucket) error {
		if err := b.Put(phrasesKey, data); err != nil {
			return fmt.Errorf("failed to save phrases: %w", err)
		}
		return nil
	})
}
