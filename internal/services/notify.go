package services

import (
	"context"
	"time"

	"matrimony-backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// NotificationDispatcher fans a notification out to its side channels
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n *models.Notification, email *EmailRequest)
}

// Notifier performs the best-effort side-effect chain behind a primary
// write: notification row, email, mobile push, and WebSocket push. Every
// step is independent; a failure is logged and the chain continues. The
// mailer, push sender, and hub may each be nil when not configured.
type Notifier struct {
	notifications NotificationStore
	users         UserStore
	mailer        Mailer
	push          PushSender
	hub           *WSHub
}

// NewNotifier creates a new notifier
func NewNotifier(notifications NotificationStore, users UserStore, mailer Mailer, push PushSender, hub *WSHub) *Notifier {
	return &Notifier{
		notifications: notifications,
		users:         users,
		mailer:        mailer,
		push:          push,
		hub:           hub,
	}
}

// Dispatch persists the notification row and triggers the side channels.
// The email request is optional; when given, a successful send marks the
// row emailed.
func (n *Notifier) Dispatch(ctx context.Context, notification *models.Notification, email *EmailRequest) {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	stored := true
	if err := n.notifications.Create(ctx, notification); err != nil {
		stored = false
		log.Error().
			Err(err).
			Str("user_id", notification.UserID).
			Str("type", notification.Type).
			Msg("Failed to create notification")
	}

	if email != nil && n.mailer != nil {
		if err := n.mailer.Send(ctx, *email); err != nil {
			log.Error().
				Err(err).
				Str("to", email.To).
				Str("type", email.Type).
				Msg("Failed to send notification email")
		} else if stored {
			if err := n.notifications.MarkEmailed(ctx, notification.ID); err != nil {
				log.Error().Err(err).Str("notification_id", notification.ID).Msg("Failed to mark notification emailed")
			}
		}
	}

	if n.push != nil {
		n.sendPush(ctx, notification)
	}

	if n.hub != nil && stored {
		n.hub.PushNotification(notification)
	}
}

func (n *Notifier) sendPush(ctx context.Context, notification *models.Notification) {
	user, err := n.users.GetByID(ctx, notification.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", notification.UserID).Msg("Failed to load push recipient")
		return
	}
	if user.PushToken == nil || *user.PushToken == "" {
		return
	}

	if err := n.push.Push(ctx, *user.PushToken, notification.Title, notification.Message); err != nil {
		log.Error().
			Err(err).
			Str("user_id", notification.UserID).
			Msg("Failed to send push notification")
	}
}
