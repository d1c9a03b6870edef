package post

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/core/interactions"
	"Ripple/internal/core/posts"
)

// ListHandler serves the resolved post feeds
type ListHandler struct {
	service interactions.Service
}

// NewListHandler creates a new handler for listing posts
func NewListHandler(service interactions.Service) *ListHandler {
	return &ListHandler{service: service}
}

type listPostsOutput struct {
	Posts []posts.View `json:"posts"`
}

// HandleList handles feed listing requests
// GET /posts
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListPosts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listPostsOutput{Posts: views})
}

// HandleListByUser handles per-user feed requests
// GET /posts/user/{username}
func (h *ListHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	views, err := h.service.ListUserPosts(r.Context(), username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listPostsOutput{Posts: views})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
