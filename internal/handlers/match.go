package handlers

import (
	"net/http"
	"strconv"

	"matrimony-backend/internal/middleware"
	"matrimony-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// MatchHandler handles the browsable match listing
type MatchHandler struct {
	matchService *services.MatchService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// Browse handles GET /api/v1/matches
func (h *MatchHandler) Browse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var filter services.MatchFilter
	q := r.URL.Query()

	if v := q.Get("min_age"); v != "" {
		if age, err := strconv.Atoi(v); err == nil {
			filter.MinAge = &age
		}
	}
	if v := q.Get("max_age"); v != "" {
		if age, err := strconv.Atoi(v); err == nil {
			filter.MaxAge = &age
		}
	}
	filter.Religion = q.Get("religion")
	filter.Location = q.Get("location")

	profiles, err := h.matchService.Browse(ctx, userID, filter)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to browse matches")
		respondError(w, "Failed to load matches", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"profiles": profiles,
		"total":    len(profiles),
	})
}

// SentInterests handles GET /api/v1/matches/interests
func (h *MatchHandler) SentInterests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	interests, err := h.matchService.SentInterests(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list sent interests")
		respondError(w, "Failed to load interests", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"interests": interests})
}
