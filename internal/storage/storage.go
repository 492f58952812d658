// Package storage provides the key-value persistence boundary.
//
// The scheduling core persists one entry per day key holding that day's
// serialized program list. Any backing that satisfies KeyValueStore works;
// the SQLite implementation is the default and the in-memory one backs
// tests.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// KeyValueStore is the persistence capability injected into the schedule
// store and replicator. Values are opaque byte payloads (JSON in practice).
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the entry for key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all stored keys with the given prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}
