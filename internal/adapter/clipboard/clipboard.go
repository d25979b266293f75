// Package clipboard adapts the system clipboard to the usecase port.
package clipboard

import (
	"context"

	"github.com/atotto/clipboard"

	"github.com/iho/receipts/internal/domain"
)

// System implements usecase.Clipboard via the OS clipboard.
type System struct{}

// NewSystem creates a System clipboard.
func NewSystem() *System {
	return &System{}
}

// Write puts text on the clipboard. One attempt, no retry.
func (*System) Write(_ context.Context, text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a system clipboard backend exists. Headless
// environments (no X11/Wayland tooling) have none.
func Available() bool {
	return !clipboard.Unsupported
}

// Null implements usecase.Clipboard where no system clipboard exists; every
// write reports failure so the surface can tell the user to copy manually.
type Null struct{}

// NewNull creates a Null clipboard.
func NewNull() *Null {
	return &Null{}
}

// Write always fails.
func (*Null) Write(_ context.Context, _ string) error {
	return domain.ErrClipboardUnavailable
}
