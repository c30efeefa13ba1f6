// Package kv provides the keyed blob stores that back store persistence.
// Every backend maps a string key to a JSON document string.
package kv

import "context"

// Store is a keyed blob store.
type Store interface {
	// Get returns the value at key. A missing key yields found == false and a nil error.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Backend is a Store with a lifecycle.
type Backend interface {
	Store
	Ping(ctx context.Context) error
	Close() error
}
