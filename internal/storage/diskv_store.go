package storage

import (
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/julianstephens/moodlit/internal/constants"
)

// DiskvStore keeps one file per key inside a directory.
type DiskvStore struct {
	path string
	d    *diskv.Diskv
}

func NewDiskvStore(dir string) *DiskvStore {
	return &DiskvStore{
		path: dir,
	}
}

func (s *DiskvStore) Init() error {
	if err := os.MkdirAll(s.path, 0700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	return nil
}

func (s *DiskvStore) Load() error {
	if s.d != nil {
		return nil
	}

	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to access storage directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path is not a directory: %s", s.path)
	}

	s.d = diskv.New(diskv.Options{
		BasePath:     s.path,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: constants.DiskvCacheBytes,
		FilePerm:     0600,
		PathPerm:     0700,
	})
	return nil
}

func (s *DiskvStore) Close() error {
	s.d = nil
	return nil
}

func (s *DiskvStore) Get(key string) ([]byte, error) {
	if s.d == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	if !s.d.Has(key) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	value, err := s.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (s *DiskvStore) Set(key string, value []byte) error {
	if s.d == nil {
		return fmt.Errorf("storage not loaded")
	}

	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) GetConfigPath() string {
	return s.path
}
