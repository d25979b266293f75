// Package file implements the storage slot as one file per key under a
// data directory. It is the default backend: the local, per-profile
// equivalent of browser local storage.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iho/receipts/internal/domain"
)

// Storage implements usecase.Storage on the local filesystem.
type Storage struct {
	dir string
}

// NewStorage creates a Storage rooted at dir, creating it if needed.
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the slot. Returns domain.ErrSlotNotFound when the slot file
// does not exist.
func (s *Storage) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrSlotNotFound
		}
		return "", err
	}
	return string(data), nil
}

// Set writes the slot atomically: the value lands in a temp file that is
// renamed over the slot, so a crash mid-write cannot corrupt it.
func (s *Storage) Set(_ context.Context, key, value string) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return err
	}

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path(key))
}

// Delete removes the slot. Deleting an absent slot is not an error.
func (s *Storage) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
