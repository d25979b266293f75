// Package memory implements the storage slot as an in-process map. Used
// for tests and for runs with persistence disabled.
package memory

import (
	"context"
	"sync"

	"github.com/iho/receipts/internal/domain"
)

// Storage implements usecase.Storage in memory.
type Storage struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewStorage creates an empty Storage.
func NewStorage() *Storage {
	return &Storage{
		slots: make(map[string]string),
	}
}

// Get reads the slot. Returns domain.ErrSlotNotFound when it was never set.
func (s *Storage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.slots[key]
	if !ok {
		return "", domain.ErrSlotNotFound
	}
	return value, nil
}

// Set writes the slot.
func (s *Storage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
	return nil
}

// Delete removes the slot.
func (s *Storage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}
