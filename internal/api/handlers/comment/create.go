package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/middleware"
	"Ripple/internal/core/comments"
	"Ripple/internal/core/interactions"
)

// CreateHandler handles comment creation requests
type CreateHandler struct {
	service interactions.Service
}

// NewCreateHandler creates a new handler for creating comments
func NewCreateHandler(service interactions.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

type createCommentInput struct {
	Content string `json:"content"`
}

type createCommentOutput struct {
	Comment *comments.Comment `json:"comment"`
}

// HandleCreate handles comment creation requests
// POST /posts/{postID}/comments
//
// Request body: { "content": "..." }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	// 100KB is plenty for a comment body
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input createCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	authID := middleware.GetAuthID(r)
	if authID == "" {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
		return
	}

	created, err := h.service.CreateComment(r.Context(), authID, postID, input.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createCommentOutput{Comment: created})
}
