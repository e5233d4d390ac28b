package services

import (
	"context"

	"matrimony-backend/internal/models"
)

// NotificationService handles the member-facing notification feed
type NotificationService struct {
	notifications NotificationStore
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifications NotificationStore) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// List retrieves the user's notifications, newest first
func (s *NotificationService) List(ctx context.Context, userID string) ([]*models.Notification, error) {
	return s.notifications.ListByUser(ctx, userID)
}

// MarkRead sets the read flag on one of the user's notifications
func (s *NotificationService) MarkRead(ctx context.Context, userID, id string) error {
	return s.notifications.MarkRead(ctx, id, userID)
}
