package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers/user"
	"github.com/MarinaMenezess/devSocial/internal/api/middleware"
	"github.com/MarinaMenezess/devSocial/internal/core/feed"
	"github.com/MarinaMenezess/devSocial/internal/core/users"
)

// RegisterUserRoutes registers the authenticated profile endpoints.
// Everything under /users/me requires a valid token.
func RegisterUserRoutes(r chi.Router, userService users.Service, feedService feed.Service,
	authMiddleware *middleware.AuthMiddleware) {

	profileHandler := user.NewProfileHandler(userService)
	libraryHandler := user.NewLibraryHandler(feedService)

	r.Route("/users/me", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Get("/", profileHandler.HandleGetMe)
		r.Put("/", profileHandler.HandleUpdateMe)
		r.Get("/posts", libraryHandler.HandleMyPosts)
		r.Get("/favorites", libraryHandler.HandleMyFavorites)
	})
}
