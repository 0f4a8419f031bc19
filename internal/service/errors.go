package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for workflow operations.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrNoEntries indicates the scan found nothing to rename.
	ErrNoEntries = errors.New("no matching entries found")

	// ErrEmptyPrompt indicates the prompt file has no entries.
	ErrEmptyPrompt = errors.New("prompt file has no entries")

	// ErrEmptyReply indicates the reply file holds no lines.
	ErrEmptyReply = errors.New("reply file is empty")

	// ErrSourceNotFound indicates the entry to rename is missing.
	ErrSourceNotFound = errors.New("source not found")

	// ErrDestinationExists indicates the rename target is already taken.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrInvalidName indicates a name that is not a single path element.
	ErrInvalidName = errors.New("invalid name")

	// ErrExtensionMismatch indicates a new file name that drops or changes
	// the extension of the file being moved.
	ErrExtensionMismatch = errors.New("extension mismatch")
)

// MismatchError reports a reply whose line count differs from the prompt.
// Nothing is written when it is returned.
type MismatchError struct {
	Entries int
	Replies int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("line count mismatch: prompt has %d entries, reply has %d lines", e.Entries, e.Replies)
}
