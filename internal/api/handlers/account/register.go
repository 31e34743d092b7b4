package account

import (
	"encoding/json"
	"net/http"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers"
	"github.com/MarinaMenezess/devSocial/internal/core/users"
)

// RegisterHandler handles account creation
type RegisterHandler struct {
	service users.Service
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(service users.Service) *RegisterHandler {
	return &RegisterHandler{service: service}
}

// HandleRegister handles POST /api/register
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered",
		"user":    user,
	})
}
