package handlers

import (
	"net/http"

	"matrimony-backend/internal/middleware"
	"matrimony-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// NotificationHandler handles the member notification feed
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /api/v1/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	notifications, err := h.notificationService.List(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list notifications")
		respondError(w, "Failed to load notifications", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
}

// MarkRead handles POST /api/v1/notifications/{notification_id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	notificationID := chi.URLParam(r, "notification_id")

	if err := h.notificationService.MarkRead(ctx, userID, notificationID); err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("notification_id", notificationID).
			Msg("Failed to mark notification read")
		respondError(w, "Failed to mark notification read", http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
