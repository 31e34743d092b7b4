package interaction

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers"
	"github.com/MarinaMenezess/devSocial/internal/api/middleware"
	"github.com/MarinaMenezess/devSocial/internal/core/interactions"
	"github.com/MarinaMenezess/devSocial/internal/core/posts"
)

// ToggleHandler handles like and favorite toggles
type ToggleHandler struct {
	service interactions.Service
}

// NewToggleHandler creates a new toggle handler
func NewToggleHandler(service interactions.Service) *ToggleHandler {
	return &ToggleHandler{service: service}
}

// HandleToggleLike handles POST /api/posts/{id}/like
func (h *ToggleHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	postID, userID, ok := h.parseToggle(w, r)
	if !ok {
		return
	}

	result, err := h.service.ToggleLike(r.Context(), postID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "Like removed"
	if result.Active {
		message = "Post liked"
	}
	handlers.WriteJSON(w, http.StatusOK, interactions.ToggleLikeResponse{
		Message: message,
		Liked:   result.Active,
	})
}

// HandleToggleFavorite handles POST /api/posts/{id}/favorite.
// Activating a favorite returns 201, deactivating returns 200.
func (h *ToggleHandler) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	postID, userID, ok := h.parseToggle(w, r)
	if !ok {
		return
	}

	result, err := h.service.ToggleFavorite(r.Context(), postID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	status := http.StatusOK
	message := "Favorite removed"
	if result.Active {
		status = http.StatusCreated
		message = "Post favorited"
	}
	handlers.WriteJSON(w, status, interactions.ToggleFavoriteResponse{
		Message:   message,
		Favorited: result.Active,
	})
}

func (h *ToggleHandler) parseToggle(w http.ResponseWriter, r *http.Request) (postID, userID int64, ok bool) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return 0, 0, false
	}

	userID, authed := middleware.GetUserID(r)
	if !authed {
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return 0, 0, false
	}

	return postID, userID, true
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Post not found")
	default:
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Internal server error")
	}
}
