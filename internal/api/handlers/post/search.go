package post

import (
	"net/http"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers"
	"github.com/MarinaMenezess/devSocial/internal/api/middleware"
	"github.com/MarinaMenezess/devSocial/internal/core/feed"
)

// SearchHandler handles feed listing and search
type SearchHandler struct {
	service feed.Service
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service feed.Service) *SearchHandler {
	return &SearchHandler{service: service}
}

// HandleSearch handles GET /api/posts. An empty q returns the full feed.
// Authenticated callers get per-post like annotations; anonymous callers
// get views without the liked_by_user field.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var viewerID *int64
	if userID, ok := middleware.GetUserID(r); ok {
		viewerID = &userID
	}

	views, err := h.service.Search(r.Context(), r.URL.Query().Get("q"), viewerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, views)
}
