package storage

import "errors"

// Common storage errors
var (
	// ErrKeyNotFound indicates that key is absent in the remote store
	ErrKeyNotFound = errors.New("key not found")

	// ErrStoreClosed indicates that store has been closed
	ErrStoreClosed = errors.New("store is closed")
)
