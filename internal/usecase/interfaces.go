package usecase

import (
	"context"
	"time"
)

// Storage defines access to one named key-value slot in a durable medium.
// Implementations return domain.ErrSlotNotFound from Get when the slot has
// never been written or was deleted.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Locator exposes the visible address of the running session. Replace
// updates the address in place, without reload semantics.
type Locator interface {
	Current(ctx context.Context) (string, error)
	Replace(ctx context.Context, url string) error
}

// Clipboard delivers text to the system clipboard.
type Clipboard interface {
	Write(ctx context.Context, text string) error
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
