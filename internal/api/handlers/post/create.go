package post

import (
	"encoding/json"
	"net/http"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers"
	"github.com/MarinaMenezess/devSocial/internal/api/middleware"
	"github.com/MarinaMenezess/devSocial/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /api/posts
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Limit request body size; 1MB allows large content while preventing abuse
	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			handlers.WriteError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 1MB)")
			return
		}
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	// Author always comes from the authenticated user, never the body
	userID, ok := middleware.GetUserID(r)
	if !ok {
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}
	req.AuthorID = userID

	response, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, response)
}
