package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers/upload"
	"github.com/MarinaMenezess/devSocial/internal/api/middleware"
)

// RegisterUploadRoutes registers the authenticated image upload endpoints.
func RegisterUploadRoutes(r chi.Router, uploadHandler *upload.Handler,
	authMiddleware *middleware.AuthMiddleware) {

	r.Route("/upload", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Post("/post-image", uploadHandler.HandlePostImage)
		r.Post("/profile-image", uploadHandler.HandleProfileImage)
	})
}

// RegisterImageRoutes registers the public image serving endpoint. Unlike
// the /api upload routes this serves raw bytes at the site root.
func RegisterImageRoutes(r chi.Router, uploadHandler *upload.Handler) {
	r.Get("/images/{key}", uploadHandler.HandleServe)
}
