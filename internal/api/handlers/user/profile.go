package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers"
	"github.com/MarinaMenezess/devSocial/internal/api/middleware"
	"github.com/MarinaMenezess/devSocial/internal/core/users"
)

// ProfileHandler handles reads and updates of the authenticated account
type ProfileHandler struct {
	service users.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service users.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// HandleGetMe handles GET /api/users/me
func (h *ProfileHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, user)
}

// HandleUpdateMe handles PUT /api/users/me
func (h *ProfileHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req users.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	req.UserID = userID

	user, err := h.service.UpdateProfile(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile updated",
		"user":    user,
	})
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case users.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, users.ErrWrongPassword):
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Old password is incorrect")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "User not found")
	case users.IsConflict(err):
		message := "Username already taken"
		if errors.Is(err, users.ErrEmailTaken) {
			message = "Email already taken"
		}
		handlers.WriteError(w, http.StatusConflict, "Conflict", message)
	default:
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Internal server error")
	}
}
