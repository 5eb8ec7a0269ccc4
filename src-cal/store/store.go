// Package store is the storage the event collection sits on: get/set of one
// opaque value under a fixed key. The real backend is sqlite via bun; Memory
// is the in-process double tests inject.
package store

import "context"

type KV interface {
	// Get returns the value under key; the bool reports whether the key
	// exists at all.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}
