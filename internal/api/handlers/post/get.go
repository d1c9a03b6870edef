package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/core/interactions"
	"Ripple/internal/core/posts"
)

// GetHandler serves single resolved posts
type GetHandler struct {
	service interactions.Service
}

// NewGetHandler creates a new handler for fetching one post
func NewGetHandler(service interactions.Service) *GetHandler {
	return &GetHandler{service: service}
}

type getPostOutput struct {
	Post *posts.View `json:"post"`
}

// HandleGet handles single post requests
// GET /posts/{postID}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	view, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, getPostOutput{Post: view})
}
