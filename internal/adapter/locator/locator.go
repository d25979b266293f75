// Package locator adapts session addresses to the usecase port. A command
// line session has no browser location bar, so the "visible address" is
// whatever URL the user handed to the command, and Replace only updates the
// held value.
package locator

import (
	"context"
	"sync"
)

// Static implements usecase.Locator over a fixed inbound address.
type Static struct {
	mu      sync.RWMutex
	address string
}

// NewStatic creates a Static locator holding address.
func NewStatic(address string) *Static {
	return &Static{address: address}
}

// Current returns the held address.
func (l *Static) Current(_ context.Context) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.address, nil
}

// Replace updates the held address.
func (l *Static) Replace(_ context.Context, url string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.address = url
	return nil
}

// Address returns the held address outside the port interface, for surfaces
// that want to show the scrubbed URL.
func (l *Static) Address() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.address
}
