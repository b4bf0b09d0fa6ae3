package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/moodlit/internal/constants"
)

type backend struct {
	name string
	path func(dir string) string
}

var backends = []backend{
	{"sqlite", func(dir string) string { return filepath.Join(dir, "moodlit.db") }},
	{"json", func(dir string) string { return filepath.Join(dir, "moodlit.json") }},
	{"diskv", func(dir string) string { return filepath.Join(dir, "moodlit.kv") }},
}

func setupTestStore(t *testing.T, b backend) (Provider, string, func()) {
	path := b.path(t.TempDir())

	store := New(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize %s store: %v", b.name, err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load %s store: %v", b.name, err)
	}

	cleanup := func() {
		store.Close()
	}

	return store, path, cleanup
}

func TestKind(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/home/u/.config/moodlit/moodlit.db", constants.StoreSQLite},
		{"moodlit.sqlite", constants.StoreSQLite},
		{"diary.json", constants.StoreJSON},
		{"diary.kv", constants.StoreDiskv},
		{"/var/lib/moodlit/", constants.StoreDiskv},
	}

	for _, tt := range tests {
		if got := Kind(tt.path); got != tt.want {
			t.Errorf("Kind(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestGetMissingKey(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			store, _, cleanup := setupTestStore(t, b)
			defer cleanup()

			_, err := store.Get(constants.KeyHistory)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestSetOverwritesAndSurvivesReopen(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			store, path, cleanup := setupTestStore(t, b)
			defer cleanup()

			if err := store.Set(constants.KeyTodayNote, []byte("first")); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := store.Set(constants.KeyTodayNote, []byte("Хороший день")); err != nil {
				t.Fatalf("second Set failed: %v", err)
			}
			if err := store.Set(constants.KeyTodayMood, []byte("null")); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := store.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			reopened := New(path)
			if err := reopened.Load(); err != nil {
				t.Fatalf("Load after reopen failed: %v", err)
			}
			defer reopened.Close()

			got, err := reopened.Get(constants.KeyTodayNote)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if string(got) != "Хороший день" {
				t.Errorf("expected overwritten value, got %q", got)
			}

			got, err = reopened.Get(constants.KeyTodayMood)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if string(got) != "null" {
				t.Errorf("expected null, got %q", got)
			}
		})
	}
}

func TestLoadUninitialized(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			store := New(b.path(t.TempDir()))
			if err := store.Load(); !errors.Is(err, ErrNotInitialized) {
				t.Errorf("expected ErrNotInitialized, got %v", err)
			}
		})
	}
}

func TestInitIsIdempotent(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			store, path, cleanup := setupTestStore(t, b)
			defer cleanup()

			if err := store.Set(constants.KeyTodayNote, []byte("keep me")); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			store.Close()

			again := New(path)
			if err := again.Init(); err != nil {
				t.Fatalf("second Init failed: %v", err)
			}
			if err := again.Load(); err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			defer again.Close()

			got, err := again.Get(constants.KeyTodayNote)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if string(got) != "keep me" {
				t.Errorf("Init clobbered existing data, got %q", got)
			}
		})
	}
}

func TestOpenInitializesMissingStore(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			path := b.path(filepath.Join(t.TempDir(), "nested"))

			store, err := Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer store.Close()

			if _, err := os.Stat(path); err != nil {
				t.Errorf("store not created at %s: %v", path, err)
			}
			if store.GetConfigPath() != path {
				t.Errorf("GetConfigPath = %s, want %s", store.GetConfigPath(), path)
			}
			if err := store.Set(constants.KeyHistory, []byte("[]")); err != nil {
				t.Errorf("Set on opened store failed: %v", err)
			}
		})
	}
}

func TestJSONStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if err := NewJSONStore(path).Load(); err == nil {
		t.Error("expected parse error for corrupt file")
	}
}
