// Package redis implements the storage slot as a prefixed Redis key, for
// sessions that want their slot to live off the local machine.
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/iho/receipts/internal/domain"
)

// Storage implements usecase.Storage using Redis.
type Storage struct {
	client *redis.Client
	prefix string
}

// NewStorage creates a new Storage.
func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		client: client,
		prefix: "receipts:slot:",
	}
}

// Get reads the slot. Returns domain.ErrSlotNotFound for an absent key.
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", domain.ErrSlotNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set writes the slot. Slots do not expire.
func (s *Storage) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// Delete removes the slot.
func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
