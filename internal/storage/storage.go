package storage

import (
	"errors"
	"strings"

	"github.com/julianstephens/moodlit/internal/constants"
)

// Kind reports which backend serves path: ".json" files use the JSON store,
// directories (a trailing "/" or a ".kv" suffix) use diskv and anything else
// is a SQLite database.
func Kind(path string) string {
	switch {
	case strings.HasSuffix(path, ".json"):
		return constants.StoreJSON
	case strings.HasSuffix(path, "/"), strings.HasSuffix(path, ".kv"):
		return constants.StoreDiskv
	default:
		return constants.StoreSQLite
	}
}

// New returns the backend for path without touching the filesystem.
func New(path string) Provider {
	switch Kind(path) {
	case constants.StoreJSON:
		return NewJSONStore(path)
	case constants.StoreDiskv:
		return NewDiskvStore(path)
	default:
		return NewSQLiteStore(path)
	}
}

// Open loads the store at path, initializing it first if it does not exist.
func Open(path string) (Provider, error) {
	store := New(path)
	if err := Ensure(store); err != nil {
		return nil, err
	}
	return store, nil
}

// Ensure loads store, running Init first when it has never been initialized.
func Ensure(store Provider) error {
	err := store.Load()
	if errors.Is(err, ErrNotInitialized) {
		if err = store.Init(); err == nil {
			err = store.Load()
		}
	}
	return err
}
