package handlers

import (
	"encoding/json"
	"net/http"

	"matrimony-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// AdminHandler handles the moderation console
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListProfiles handles GET /api/v1/admin/profiles
func (h *AdminHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.adminService.ListProfiles(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list profiles")
		respondError(w, "Failed to load profiles", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"profiles": profiles})
}

type approveRequest struct {
	Approved bool `json:"approved"`
}

// ApproveProfile handles POST /api/v1/admin/profiles/{profile_id}/approve
func (h *AdminHandler) ApproveProfile(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profile_id")

	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.adminService.SetApproval(r.Context(), profileID, req.Approved)
	if err != nil {
		log.Error().Err(err).Str("profile_id", profileID).Msg("Failed to update approval")
		respondError(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("profile_id", profileID).
		Bool("approved", req.Approved).
		Msg("Profile approval updated")

	respondJSON(w, http.StatusOK, profile)
}

type disableRequest struct {
	Disabled bool `json:"disabled"`
}

// DisableProfile handles POST /api/v1/admin/profiles/{profile_id}/disable
func (h *AdminHandler) DisableProfile(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profile_id")

	var req disableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.adminService.SetDisabled(r.Context(), profileID, req.Disabled)
	if err != nil {
		log.Error().Err(err).Str("profile_id", profileID).Msg("Failed to update disabled flag")
		respondError(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("profile_id", profileID).
		Bool("disabled", req.Disabled).
		Msg("Profile disabled flag updated")

	respondJSON(w, http.StatusOK, profile)
}

// ListMessages handles GET /api/v1/admin/messages
func (h *AdminHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.adminService.ListMessages(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list contact messages")
		respondError(w, "Failed to load messages", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

// MarkMessageRead handles POST /api/v1/admin/messages/{message_id}/read
func (h *AdminHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "message_id")

	if err := h.adminService.MarkMessageRead(r.Context(), messageID); err != nil {
		log.Error().Err(err).Str("message_id", messageID).Msg("Failed to mark message read")
		respondError(w, "Failed to mark message read", http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
