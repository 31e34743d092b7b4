package account

import (
	"errors"
	"net/http"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers"
	"github.com/MarinaMenezess/devSocial/internal/core/users"
)

// handleServiceError maps user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case users.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, users.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Invalid email or password")
	case errors.Is(err, users.ErrWrongPassword):
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Old password is incorrect")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "User not found")
	case errors.Is(err, users.ErrUsernameTaken):
		handlers.WriteError(w, http.StatusConflict, "Conflict", "Username already taken")
	case errors.Is(err, users.ErrEmailTaken):
		handlers.WriteError(w, http.StatusConflict, "Conflict", "Email already taken")
	default:
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Internal server error")
	}
}
