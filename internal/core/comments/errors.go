package comments

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCommentNotFound is returned when a comment lookup finds no matching record
var ErrCommentNotFound = errors.New("comment not found")

// ValidationError reports a malformed create request
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid comment: %s", e.Reason)
}

// IsValidationError reports whether err is a comment validation failure
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateContent checks that content is non-empty after trimming.
// The stored content is the caller's verbatim text; trimming is for the
// check only.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Reason: "comment content is required"}
	}
	return nil
}
