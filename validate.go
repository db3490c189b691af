package chatcards

import (
	"fmt"
	"strings"
)

// ValidateMessages checks constraints on externally supplied messages.
// Bodies are unconstrained; an author must contain a visible character
// because the avatar is derived from it.
func ValidateMessages(msgs []Message) error {
	for i, m := range msgs {
		if strings.TrimSpace(m.Author) == "" {
			return fmt.Errorf("message %d: author must not be empty: %w", i, ErrValidation)
		}
	}
	return nil
}
