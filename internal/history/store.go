package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// storageKey is the single key the serialized region list lives under.
const storageKey = "hackathon_watch_regions"

// Store is the persistent key-value boundary: one string value per key. The
// watch list is stored as one JSON-encoded array under storageKey.
type Store interface {
	// Get returns the value for key, with ok=false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes the value for key.
	Set(ctx context.Context, key, value string) error
}

// FileStore persists values in a single JSON file, suitable for the default
// single-user setup.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at path. Parent directories are
// created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", s.path, err)
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return "", false, fmt.Errorf("parse %s: %w", s.path, err)
	}
	v, ok := values[key]
	return v, ok, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	values := map[string]string{}
	if data, err := os.ReadFile(s.path); err == nil {
		// An unreadable file is replaced wholesale on the next write.
		_ = json.Unmarshal(data, &values)
	}
	values[key] = value

	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(s.path), err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
