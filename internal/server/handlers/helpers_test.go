package handlers

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/iudanet/phrasesync/internal/server/storage"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMemoryStore хранилище в памяти поверх RemoteStoreMock
func newMemoryStore() (*storage.RemoteStoreMock, map[string]string) {
	var mu sync.Mutex
	data := make(map[string]string)

	return &storage.RemoteStoreMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			v, ok := data[key]
			if !ok {
				return "", storage.ErrKeyNotFound
			}
			return v, nil
		},
		SetFunc: func(ctx context.Context, key, value string) error {
			mu.Lock()
			defer mu.Unlock()
			data[key] = value
			return nil
		},
		PingFunc: func(ctx context.Context) error {
			return nil
		},
		CloseFunc: func() error {
			return nil
		},
	}, data
}

func newBufferLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
