package domain

import "errors"

var (
	// Storage errors
	ErrSlotNotFound = errors.New("storage slot not found")

	// Clipboard errors
	ErrClipboardUnavailable = errors.New("no system clipboard available")
)
