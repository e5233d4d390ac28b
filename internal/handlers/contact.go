package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"matrimony-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// ContactHandler handles the public contact form
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/v1/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in services.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.contactService.Submit(r.Context(), in)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			respondError(w, verr.Error(), http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("Failed to store contact message")
		respondError(w, "Failed to send message", http.StatusInternalServerError)
		return
	}

	log.Info().Str("message_id", msg.ID).Msg("Contact message received")

	respondJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}
