package comment

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/core/comments"
	"Ripple/internal/core/interactions"
)

// ListHandler serves a post's resolved comments
type ListHandler struct {
	service interactions.Service
}

// NewListHandler creates a new handler for listing comments
func NewListHandler(service interactions.Service) *ListHandler {
	return &ListHandler{service: service}
}

type listCommentsOutput struct {
	Comments []comments.View `json:"comments"`
}

// HandleList handles comment listing requests
// GET /posts/{postID}/comments
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	views, err := h.service.ListComments(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listCommentsOutput{Comments: views})
}
