package handlers

import (
	"encoding/json"
	"net/http"

	"matrimony-backend/internal/middleware"
	"matrimony-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// MembershipHandler handles membership catalog and purchase requests
type MembershipHandler struct {
	membershipService *services.MembershipService
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// Tiers handles GET /api/v1/membership/tiers
func (h *MembershipHandler) Tiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.membershipService.ListTiers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list membership tiers")
		respondError(w, "Failed to load membership tiers", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"tiers": tiers})
}

// Current handles GET /api/v1/membership/current
func (h *MembershipHandler) Current(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	membership, err := h.membershipService.Current(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get current membership")
		respondError(w, "Failed to load membership", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"membership": membership})
}

type purchaseRequest struct {
	TierID string `json:"tier_id"`
}

// Purchase handles POST /api/v1/membership/purchase
func (h *MembershipHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.TierID == "" {
		respondError(w, "tier_id is required", http.StatusBadRequest)
		return
	}

	membership, err := h.membershipService.Purchase(ctx, userID, req.TierID)
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("tier_id", req.TierID).
			Msg("Failed to purchase membership")
		respondError(w, "Failed to purchase membership", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("tier_id", req.TierID).
		Time("expires_at", membership.ExpiresAt).
		Msg("Membership purchased")

	respondJSON(w, http.StatusCreated, membership)
}
