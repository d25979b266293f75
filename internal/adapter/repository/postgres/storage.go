// Package postgres implements the storage slot as a single-row upsert in a
// slots table, for sessions that share a database between machines.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/receipts/internal/domain"
)

// Storage implements usecase.Storage using PostgreSQL.
type Storage struct {
	pool *pgxpool.Pool
}

// NewStorage creates a new Storage.
func NewStorage(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

// Get reads the slot. Returns domain.ErrSlotNotFound for an absent row.
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM slots WHERE key = $1`, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrSlotNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set writes the slot, replacing any previous value.
func (s *Storage) Set(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO slots (key, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	return err
}

// Delete removes the slot. Deleting an absent slot is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM slots WHERE key = $1`, key)
	return err
}
