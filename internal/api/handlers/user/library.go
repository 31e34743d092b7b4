package user

import (
	"net/http"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers"
	"github.com/MarinaMenezess/devSocial/internal/api/middleware"
	"github.com/MarinaMenezess/devSocial/internal/core/feed"
)

// LibraryHandler serves the authenticated user's own posts and favorites
type LibraryHandler struct {
	feed feed.Service
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(feedService feed.Service) *LibraryHandler {
	return &LibraryHandler{feed: feedService}
}

// HandleMyPosts handles GET /api/users/me/posts
func (h *LibraryHandler) HandleMyPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	views, err := h.feed.ListByAuthor(r.Context(), userID)
	if err != nil {
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Internal server error")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, views)
}

// HandleMyFavorites handles GET /api/users/me/favorites
func (h *LibraryHandler) HandleMyFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	views, err := h.feed.ListFavorites(r.Context(), userID)
	if err != nil {
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Internal server error")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, views)
}
