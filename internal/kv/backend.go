package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kv: key not found")

// Backend is a flat string key-value store. Values are opaque to the backend;
// the weights store keeps JSON documents and plain strings in it.
type Backend interface {
	// Get returns ErrNotFound when the key was never written or was deleted.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes all given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
