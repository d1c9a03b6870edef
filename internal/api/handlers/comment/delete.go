package comment

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/middleware"
	"Ripple/internal/core/interactions"
)

// DeleteHandler handles comment deletion requests
type DeleteHandler struct {
	service interactions.Service
}

// NewDeleteHandler creates a new handler for deleting comments
func NewDeleteHandler(service interactions.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

type deleteCommentOutput struct {
	Message string `json:"message"`
}

// HandleDelete handles comment deletion requests
// DELETE /comments/{commentID}
//
// Only the comment's author may delete it; the parent post's reference list
// is updated in the same operation.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	commentID, err := strconv.ParseInt(chi.URLParam(r, "commentID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid comment id")
		return
	}

	authID := middleware.GetAuthID(r)
	if authID == "" {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
		return
	}

	if err := h.service.DeleteComment(r.Context(), authID, commentID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteCommentOutput{Message: "comment deleted successfully"})
}
