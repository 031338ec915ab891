package storage

import (
	"context"
	"fmt"
	"sync"
)

// Opener открывает соединение с backend-ом Remote Store
type Opener func(ctx context.Context) (RemoteStore, error)

// Lazy откладывает открытие Remote Store до первого запроса и дальше
// переиспользует одно соединение для всех запросов процесса.
// Неудачная попытка открытия не кешируется: следующий запрос попробует снова.
type Lazy struct {
	store  RemoteStore
	open   Opener
	mu     sync.Mutex
	closed bool
}

// NewLazy создает ленивую обертку над opener
func NewLazy(open Opener) *Lazy {
	return &Lazy{open: open}
}

// handle возвращает открытое соединение, открывая его при необходимости
func (l *Lazy) handle(ctx context.Context) (RemoteStore, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, ErrStoreClosed
	}

	if l.store != nil {
		return l.store, nil
	}

	store, err := l.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote store: %w", err)
	}

	l.store = store
	return store, nil
}

// Get returns value stored under key
func (l *Lazy) Get(ctx context.Context, key string) (string, error) {
	store, err := l.handle(ctx)
	if err != nil {
		return "", err
	}
	return store.Get(ctx, key)
}

// Set overwrites value stored under key
func (l *Lazy) Set(ctx context.Context, key, value string) error {
	store, err := l.handle(ctx)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, value)
}

// Ping opens the store if needed and pings it
func (l *Lazy) Ping(ctx context.Context) error {
	store, err := l.handle(ctx)
	if err != nil {
		return err
	}
	return store.Ping(ctx)
}

// Close закрывает соединение, если оно было открыто.
// После Close все операции возвращают ErrStoreClosed.
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.store == nil {
		return nil
	}

	err := l.store.Close()
	l.store = nil
	return err
}
