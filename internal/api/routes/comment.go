package routes

import (
	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers/comment"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/interactions"
)

// RegisterCommentRoutes registers comment endpoints on the router
func RegisterCommentRoutes(r chi.Router, service interactions.Service, auth *middleware.AuthMiddleware) {
	listHandler := comment.NewListHandler(service)
	createHandler := comment.NewCreateHandler(service)
	deleteHandler := comment.NewDeleteHandler(service)

	r.Get("/posts/{postID}/comments", listHandler.HandleList)

	r.With(auth.RequireAuth).Post("/posts/{postID}/comments", createHandler.HandleCreate)
	r.With(auth.RequireAuth).Delete("/comments/{commentID}", deleteHandler.HandleDelete)
}
