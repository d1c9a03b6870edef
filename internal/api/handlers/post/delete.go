package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/middleware"
	"Ripple/internal/core/interactions"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service interactions.Service
}

// NewDeleteHandler creates a new handler for deleting posts
func NewDeleteHandler(service interactions.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

type deletePostOutput struct {
	Message string `json:"message"`
}

// HandleDelete handles post deletion requests
// DELETE /posts/{postID}
//
// Only the post's owner may delete it; its comments are cascaded first.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	authID := middleware.GetAuthID(r)
	if authID == "" {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
		return
	}

	if err := h.service.DeletePost(r.Context(), authID, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deletePostOutput{Message: "post deleted successfully"})
}
