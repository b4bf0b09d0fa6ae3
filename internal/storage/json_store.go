package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type fileData struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// JSONStore keeps every key in a single JSON document that is rewritten on
// each Set.
type JSONStore struct {
	path string
	data *fileData
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Leave an existing file alone
	if _, err := os.Stat(s.path); err == nil {
		return nil
	}

	s.data = &fileData{
		Version: 1,
		Values:  make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.data = &fileData{}
	if err := json.Unmarshal(data, s.data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.data.Values == nil {
		s.data.Values = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	if s.data == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	value, ok := s.data.Values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return []byte(value), nil
}

func (s *JSONStore) Set(key string, value []byte) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.data.Values[key] = string(value)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
