package post

import (
	"errors"
	"net/http"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers"
	"github.com/MarinaMenezess/devSocial/internal/core/posts"
)

// handleServiceError maps post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Post not found")
	case errors.Is(err, posts.ErrNotPostOwner):
		handlers.WriteError(w, http.StatusForbidden, "Forbidden", "You do not own this post")
	case errors.Is(err, posts.ErrStorageInconsistency):
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "The operation did not complete; please retry")
	default:
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Internal server error")
	}
}
