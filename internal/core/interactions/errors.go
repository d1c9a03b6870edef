package interactions

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned when the acting principal cannot be
	// resolved to an internal user. Nothing has been written when this
	// surfaces.
	ErrUnauthenticated = errors.New("principal not recognized")

	// ErrForbidden is returned when an ownership check fails
	ErrForbidden = errors.New("forbidden")
)

// UploadError wraps a failure from the external image store
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("image upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// IsUploadError reports whether err came from the image store
func IsUploadError(err error) bool {
	var ue *UploadError
	return errors.As(err, &ue)
}
