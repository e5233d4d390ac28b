package handlers

import (
	"encoding/json"
	"net/http"

	"matrimony-backend/internal/middleware"
	"matrimony-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// InterestHandler handles the express-interest workflow
type InterestHandler struct {
	interestService *services.InterestService
}

// NewInterestHandler creates a new interest handler
func NewInterestHandler(interestService *services.InterestService) *InterestHandler {
	return &InterestHandler{interestService: interestService}
}

type sendInterestRequest struct {
	ToUserID string  `json:"to_user_id"`
	Message  *string `json:"message"`
}

// Send handles POST /api/v1/interests
func (h *InterestHandler) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req sendInterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ToUserID == "" {
		respondError(w, "to_user_id is required", http.StatusBadRequest)
		return
	}

	interest, err := h.interestService.Send(ctx, userID, req.ToUserID, req.Message)
	if err != nil {
		log.Error().
			Err(err).
			Str("from_user_id", userID).
			Str("to_user_id", req.ToUserID).
			Msg("Failed to send interest")
		respondError(w, "Failed to send interest", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("from_user_id", userID).
		Str("to_user_id", req.ToUserID).
		Str("interest_id", interest.ID).
		Msg("Interest sent")

	respondJSON(w, http.StatusCreated, interest)
}

type respondInterestRequest struct {
	Action string `json:"action"`
}

// Respond handles POST /api/v1/interests/{interest_id}/respond
func (h *InterestHandler) Respond(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	interestID := chi.URLParam(r, "interest_id")

	var req respondInterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	interest, err := h.interestService.Respond(ctx, userID, interestID, req.Action)
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("interest_id", interestID).
			Msg("Failed to respond to interest")
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, interest)
}

// Received handles GET /api/v1/interests/received
func (h *InterestHandler) Received(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	interests, err := h.interestService.ListReceived(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list received interests")
		respondError(w, "Failed to load interests", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"interests": interests})
}
