package account

import (
	"encoding/json"
	"net/http"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers"
	"github.com/MarinaMenezess/devSocial/internal/auth"
	"github.com/MarinaMenezess/devSocial/internal/core/users"
)

// LoginHandler handles credential verification and token issuance
type LoginHandler struct {
	service users.Service
	tokens  *auth.TokenIssuer
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service users.Service, tokens *auth.TokenIssuer) *LoginHandler {
	return &LoginHandler{service: service, tokens: tokens}
}

// LoginResponse is the wire response for a successful login
type LoginResponse struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}

// HandleLogin handles POST /api/login
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req users.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Internal server error")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
}
