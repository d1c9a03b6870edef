package routes

import (
	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers/post"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/interactions"
)

// RegisterPostRoutes registers post endpoints on the router.
// Reads are public; every mutation requires an authenticated principal.
func RegisterPostRoutes(r chi.Router, service interactions.Service, auth *middleware.AuthMiddleware) {
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	createHandler := post.NewCreateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	likeHandler := post.NewLikeHandler(service)

	r.Get("/posts", listHandler.HandleList)
	r.Get("/posts/user/{username}", listHandler.HandleListByUser)
	r.Get("/posts/{postID}", getHandler.HandleGet)

	r.With(auth.RequireAuth).Post("/posts", createHandler.HandleCreate)
	r.With(auth.RequireAuth).Delete("/posts/{postID}", deleteHandler.HandleDelete)
	r.With(auth.RequireAuth).Post("/posts/{postID}/like", likeHandler.HandleLike)
}
