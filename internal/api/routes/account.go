package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers/account"
	"github.com/MarinaMenezess/devSocial/internal/auth"
	"github.com/MarinaMenezess/devSocial/internal/core/users"
)

// RegisterAccountRoutes registers the unauthenticated register and login
// endpoints.
func RegisterAccountRoutes(r chi.Router, userService users.Service, tokens *auth.TokenIssuer) {
	registerHandler := account.NewRegisterHandler(userService)
	loginHandler := account.NewLoginHandler(userService, tokens)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", registerHandler.HandleRegister)
		r.Post("/login", loginHandler.HandleLogin)
	})
}
