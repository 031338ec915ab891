package boltdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/phrasesync/internal/client/storage"
)

// bucketCache BoltDB bucket with the sync key and the phrase collection
var bucketCache = []byte("cache")

// Options настройки хранилища
type Options struct {
	// MaxPhrasesBytes ограничивает размер сериализованной коллекции.
	// 0 - без ограничения.
	MaxPhrasesBytes int
}

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db       *bbolt.DB
	maxBytes int
	mu       sync.RWMutex
	closed   bool
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string, opts ...Options) (*Storage, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	// Таймаут не дает зависнуть, если файл заблокирован другим процессом
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db, maxBytes: o.MaxPhrasesBytes}

	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.db == nil {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketCache); err != nil {
			return fmt.Errorf("failed to create cache bucket: %w", err)
		}
		return nil
	})
}

// view выполняет read-only транзакцию, если хранилище открыто
func (s *Storage) view(fn func(b *bbolt.Bucket) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return storage.ErrStorageClosed
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}
		return fn(bucket)
	})
}

// update выполняет read-write транзакцию, если хранилище открыто
func (s *Storage) update(fn func(b *bbolt.Bucket) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}
		return fn(bucket)
	})
}
