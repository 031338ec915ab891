package storage

import "errors"

// Common client storage errors
var (
	// ErrSyncKeyNotFound indicates that no sync key was stored yet
	ErrSyncKeyNotFound = errors.New("sync key not found")

	// ErrPhrasesNotFound indicates that no phrase collection was stored yet
	ErrPhrasesNotFound = errors.New("phrases not found")

	// ErrQuotaExceeded indicates that the serialized collection does not fit
	// into the configured storage quota. The previous value is kept.
	ErrQuotaExceeded = errors.New("local storage quota exceeded")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
