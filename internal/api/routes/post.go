package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers/interaction"
	"github.com/MarinaMenezess/devSocial/internal/api/handlers/post"
	"github.com/MarinaMenezess/devSocial/internal/api/middleware"
	"github.com/MarinaMenezess/devSocial/internal/core/feed"
	"github.com/MarinaMenezess/devSocial/internal/core/interactions"
	"github.com/MarinaMenezess/devSocial/internal/core/posts"
)

// RegisterPostRoutes registers the post CRUD, feed and toggle endpoints.
// Reads take OptionalAuth so anonymous callers still get the feed, just
// without per-post like annotations; writes require a valid token.
func RegisterPostRoutes(r chi.Router, postService posts.Service, feedService feed.Service,
	interactionService interactions.Service, authMiddleware *middleware.AuthMiddleware) {

	createHandler := post.NewCreateHandler(postService)
	getHandler := post.NewGetHandler(postService)
	updateHandler := post.NewUpdateHandler(postService)
	deleteHandler := post.NewDeleteHandler(postService)
	searchHandler := post.NewSearchHandler(feedService)
	toggleHandler := interaction.NewToggleHandler(interactionService)

	r.Route("/posts", func(r chi.Router) {
		r.With(authMiddleware.OptionalAuth).Get("/", searchHandler.HandleSearch)
		r.With(authMiddleware.RequireAuth).Post("/", createHandler.HandleCreate)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", getHandler.HandleGet)
			r.With(authMiddleware.RequireAuth).Put("/", updateHandler.HandleUpdate)
			r.With(authMiddleware.RequireAuth).Delete("/", deleteHandler.HandleDelete)

			r.With(authMiddleware.RequireAuth).Post("/like", toggleHandler.HandleToggleLike)
			r.With(authMiddleware.RequireAuth).Post("/favorite", toggleHandler.HandleToggleFavorite)
		})
	})
}
