package posts

import (
	"errors"
	"fmt"
)

// ErrPostNotFound is returned when a post lookup finds no matching record
var ErrPostNotFound = errors.New("post not found")

// ValidationError reports a malformed create request
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid post: %s", e.Reason)
}

// IsValidationError reports whether err is a post validation failure
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateNew checks the create-time invariant: a post needs text content,
// an image URL, or both.
func ValidateNew(content, imageURL string) error {
	if content == "" && imageURL == "" {
		return &ValidationError{Reason: "post must contain either text or image"}
	}
	return nil
}
