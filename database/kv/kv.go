// Package kv provides the single-key persistence layer for the booking
// collection: one value stored under one named key, rewritten in full on
// every change.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("kv: key not found")

// Store is a minimal named key-value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Name identifies the backend, e.g. "file" or "redis".
	Name() string
}
