// Package kvstore provides the narrow get/set-by-key contract the local
// storage mode persists through, with a Redis-backed implementation for
// deployments and an in-memory one for tests.
package kvstore

// Store reads and writes opaque blobs by key. Missing keys return (nil, nil).
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}
