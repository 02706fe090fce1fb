package types

import "errors"

// Store errors. Callers classify failures with errors.Is; the concrete cause
// is wrapped underneath.
var (
	// ErrStorageUnavailable means the database file could not be opened,
	// created, or initialized.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrWrite means a mutating statement could not be committed.
	ErrWrite = errors.New("write failed")

	// ErrStoreClosed is returned by any operation after Close.
	ErrStoreClosed = errors.New("store is closed")
)
