package handlers

import (
	"net/http"

	"matrimony-backend/internal/middleware"
	"matrimony-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// PhotoHandler handles profile photo HTTP requests
type PhotoHandler struct {
	photoService *services.PhotoService
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photoService *services.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// Upload handles POST /api/v1/photos
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, services.MaxPhotoSize+1024)
	if err := r.ParseMultipartForm(services.MaxPhotoSize); err != nil {
		respondError(w, "Image must be smaller than 5MB", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	url, err := h.photoService.Upload(ctx, userID, header.Filename, contentType, header.Size, file)
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("filename", header.Filename).
			Msg("Failed to upload photo")
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Info().Str("user_id", userID).Str("url", url).Msg("Profile photo uploaded")

	respondJSON(w, http.StatusOK, map[string]string{"profile_photo": url})
}

// Remove handles DELETE /api/v1/photos
func (h *PhotoHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	if err := h.photoService.Remove(ctx, userID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to remove photo")
		respondError(w, "Failed to remove photo", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
