package handlers

import (
	"encoding/json"
	"net/http"

	"matrimony-backend/internal/middleware"
	"matrimony-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// ProfileHandler handles profile and preference HTTP requests
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get profile")
		respondError(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var upd services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.profileService.Update(r.Context(), userID, upd)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to update profile")
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Info().Str("user_id", userID).Msg("Profile updated")

	respondJSON(w, http.StatusOK, profile)
}

// GetPreferences handles GET /api/v1/preferences
func (h *ProfileHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	prefs, err := h.profileService.GetPreferences(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get preferences")
		respondError(w, "Failed to get preferences", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, prefs)
}

// SavePreferences handles PUT /api/v1/preferences
func (h *ProfileHandler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var upd services.PreferencesUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	prefs, err := h.profileService.SavePreferences(r.Context(), userID, upd)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to save preferences")
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Info().Str("user_id", userID).Msg("Preferences saved")

	respondJSON(w, http.StatusOK, prefs)
}
