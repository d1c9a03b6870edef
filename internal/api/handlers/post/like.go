package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/middleware"
	"Ripple/internal/core/interactions"
)

// LikeHandler handles like toggle requests
type LikeHandler struct {
	service interactions.Service
}

// NewLikeHandler creates a new handler for toggling likes
func NewLikeHandler(service interactions.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

type likePostOutput struct {
	Message string `json:"message"`
	Result  string `json:"result"`
}

// HandleLike handles like toggle requests
// POST /posts/{postID}/like
//
// The direction is decided server-side from the caller's current membership
// in the like set.
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.service.ToggleLike(r.Context(), authID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "post liked successfully"
	if result == interactions.Unliked {
		message = "post unliked successfully"
	}

	writeJSON(w, http.StatusOK, likePostOutput{Message: message, Result: string(result)})
}
