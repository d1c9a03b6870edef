package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Ripple/internal/core/interactions"
	"Ripple/internal/core/posts"
	"Ripple/internal/core/users"
)

// errorResponse represents a standardized JSON error response
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response with the given status code
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service-layer errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, interactions.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "Account not recognized")

	case errors.Is(err, interactions.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden", "You can only delete your own posts")

	case errors.Is(err, posts.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")

	case errors.Is(err, users.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "User not found")

	case posts.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case interactions.IsUploadError(err):
		writeError(w, http.StatusBadRequest, "UploadFailed", "Failed to upload image")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
