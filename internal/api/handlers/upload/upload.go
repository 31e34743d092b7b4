package upload

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MarinaMenezess/devSocial/internal/api/handlers"
	"github.com/MarinaMenezess/devSocial/internal/imagestore"
)

// maxImageSize caps uploads at 10MB
const maxImageSize = 10 * 1024 * 1024

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Handler accepts multipart image uploads, stores them and hands back a
// URL the client can embed in posts and profiles.
type Handler struct {
	store         *imagestore.Store
	publicBaseURL string
	logger        *slog.Logger
}

// NewHandler creates a new upload handler. publicBaseURL is the external
// address images are served from, without a trailing slash.
func NewHandler(store *imagestore.Store, publicBaseURL string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:         store,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// HandlePostImage handles POST /api/upload/post-image
func (h *Handler) HandlePostImage(w http.ResponseWriter, r *http.Request) {
	h.handleUpload(w, r, "postImage")
}

// HandleProfileImage handles POST /api/upload/profile-image
func (h *Handler) HandleProfileImage(w http.ResponseWriter, r *http.Request) {
	h.handleUpload(w, r, "profileImage")
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request, field string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		handlers.WriteError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
			"Image too large (max 10MB)")
		return
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest",
			fmt.Sprintf("Missing file field %q", field))
		return
	}
	defer file.Close()

	ext := strings.ToLower(path.Ext(header.Filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest",
			"Unsupported image type; use jpg, png, gif or webp")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Failed to read upload")
		return
	}

	key := uuid.NewString() + ext
	if err := h.store.Upload(r.Context(), key, data, contentType); err != nil {
		h.logger.Error("failed to store image", "key", key, "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to store image")
		return
	}

	h.logger.Info("image uploaded", "key", key, "size", len(data))
	handlers.WriteJSON(w, http.StatusOK, map[string]string{
		"imageUrl": h.publicBaseURL + "/images/" + key,
	})
}

// HandleServe handles GET /images/{key}
func (h *Handler) HandleServe(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" || strings.Contains(key, "/") || strings.Contains(key, "..") {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid image key")
		return
	}

	data, contentType, err := h.store.Download(r.Context(), key)
	if err != nil {
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Image not found")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
