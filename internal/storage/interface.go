package storage

import "errors"

var (
	// ErrNotFound is returned by Get for keys that were never written.
	ErrNotFound = errors.New("key not found")
	// ErrNotInitialized is returned by Load when the store does not exist yet.
	ErrNotInitialized = errors.New("storage not initialized, run 'moodlit init' first")
)

// Provider is a small durable key/value store. Values are opaque bytes and
// each Set replaces the whole value under its key.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Values
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error

	// Utils
	GetConfigPath() string
}
