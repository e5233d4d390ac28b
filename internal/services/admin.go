package services

import (
	"context"

	"matrimony-backend/internal/models"
)

// AdminService handles the moderation console operations
type AdminService struct {
	profiles ProfileStore
	contacts ContactStore
	notifier NotificationDispatcher
}

// NewAdminService creates a new admin service
func NewAdminService(profiles ProfileStore, contacts ContactStore, notifier NotificationDispatcher) *AdminService {
	return &AdminService{
		profiles: profiles,
		contacts: contacts,
		notifier: notifier,
	}
}

// ListProfiles retrieves every profile for moderation
func (s *AdminService) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	return s.profiles.ListAll(ctx)
}

// SetApproval flips a profile's approval flag and notifies the owner
// best-effort: approved profiles get the approval email, revoked ones the
// update-required email.
func (s *AdminService) SetApproval(ctx context.Context, profileID string, approved bool) (*models.Profile, error) {
	if err := s.profiles.SetApproved(ctx, profileID, approved); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	notifType := models.NotificationProfileApproved
	title := "Profile Approved"
	message := "Your profile has been approved and is now visible to other members."
	if !approved {
		notifType = models.NotificationProfileRejected
		title = "Profile Update Required"
		message = "Your profile needs some updates before it can be approved."
	}

	notification := &models.Notification{
		UserID:  profile.UserID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}
	email := &EmailRequest{
		To:            profile.Email,
		Type:          notifType,
		RecipientName: profile.FullName,
	}
	s.notifier.Dispatch(ctx, notification, email)

	return profile, nil
}

// SetDisabled flips a profile's disabled flag
func (s *AdminService) SetDisabled(ctx context.Context, profileID string, disabled bool) (*models.Profile, error) {
	if err := s.profiles.SetDisabled(ctx, profileID, disabled); err != nil {
		return nil, err
	}
	return s.profiles.GetByID(ctx, profileID)
}

// ListMessages retrieves every contact message
func (s *AdminService) ListMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.contacts.ListAll(ctx)
}

// MarkMessageRead sets a contact message's read flag
func (s *AdminService) MarkMessageRead(ctx context.Context, id string) error {
	return s.contacts.MarkRead(ctx, id)
}
