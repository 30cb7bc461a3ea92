package app

import "errors"

// Operation failures degrade to "operation did not happen": callers surface
// the message and no state changes.
var (
	// ErrValidation marks a rejected input (required field missing, bad
	// status, and the like).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an operation against a record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotPlacing marks a placement operation while the scheduler is idle.
	ErrNotPlacing = errors.New("no placement in progress")
)
