package post

import (
	"errors"
	"io"
	"net/http"

	"Ripple/internal/api/middleware"
	"Ripple/internal/core/interactions"
	"Ripple/internal/core/posts"
)

// maxImageSize caps uploaded images at 5 MiB
const maxImageSize = 5 << 20

// CreateHandler handles post creation requests
type CreateHandler struct {
	service interactions.Service
}

// NewCreateHandler creates a new handler for creating posts
func NewCreateHandler(service interactions.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

type createPostOutput struct {
	Post *posts.Post `json:"post"`
}

// HandleCreate handles post creation requests
// POST /posts
//
// Multipart body: "content" text field, optional "image" file field.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Leave headroom above the image cap for the text fields
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+64*1024)

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid multipart body")
		return
	}

	authID := middleware.GetAuthID(r)
	if authID == "" {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
		return
	}

	req := interactions.CreatePostRequest{
		Content: r.FormValue("content"),
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		data, readErr := io.ReadAll(io.LimitReader(file, maxImageSize+1))
		if readErr != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "Failed to read image")
			return
		}
		if len(data) > maxImageSize {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "Image exceeds the 5 MiB limit")
			return
		}
		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}
		req.Image = data
		req.ImageType = contentType
	case errors.Is(err, http.ErrMissingFile):
		// Text-only post
	default:
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid image field")
		return
	}

	created, err := h.service.CreatePost(r.Context(), authID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createPostOutput{Post: created})
}
