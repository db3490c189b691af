package chatcards

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a message, theme or option failed validation.
	ErrValidation = errors.New("validation error")
)
