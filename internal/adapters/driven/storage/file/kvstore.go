// Package file provides a driven.KeyValueStore that keeps one JSON file per
// key inside a data directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/custodia-labs/recipebook/internal/core/domain"
	"github.com/custodia-labs/recipebook/internal/core/ports/driven"
)

// Ensure KVStore implements the interface.
var _ driven.KeyValueStore = (*KVStore)(nil)

const fileExt = ".json"

var validKey = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// KVStore stores each key as <dir>/<key>.json. On Unix, writes go through
// renameio so readers never see partial data.
type KVStore struct {
	dir string
}

// NewKVStore creates a file store rooted at dir.
// If dir is empty, defaults to ~/.recipebook/data.
func NewKVStore(dir string) (*KVStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".recipebook", "data")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &KVStore{dir: dir}, nil
}

// Dir returns the data directory.
func (s *KVStore) Dir() string {
	return s.dir
}

// Get returns the contents of the key's file.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading key %q: %w", key, err)
	}
	return data, nil
}

// Put atomically replaces the key's file.
func (s *KVStore) Put(_ context.Context, key string, value []byte) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := writeFile(path, value, 0600); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// Delete removes the key's file.
func (s *KVStore) Delete(_ context.Context, key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; files are closed after every operation.
func (s *KVStore) Close() error {
	return nil
}

func (s *KVStore) pathFor(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("%w: invalid key %q", domain.ErrInvalidInput, key)
	}
	return filepath.Join(s.dir, key+fileExt), nil
}
