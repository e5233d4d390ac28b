package services

import (
	"context"
	"fmt"
	"time"

	"matrimony-backend/internal/models"

	"github.com/google/uuid"
)

// InterestService handles the express-interest workflow
type InterestService struct {
	interests InterestStore
	profiles  ProfileStore
	notifier  NotificationDispatcher
}

// NewInterestService creates a new interest service
func NewInterestService(interests InterestStore, profiles ProfileStore, notifier NotificationDispatcher) *InterestService {
	return &InterestService{
		interests: interests,
		profiles:  profiles,
		notifier:  notifier,
	}
}

// Send records a match interest from one member to another. Only the
// interest insert is a hard failure; the recipient's notification, email,
// and push are best-effort and never abort the operation. Sending twice
// for the same pair creates two independent rows.
func (s *InterestService) Send(ctx context.Context, fromUserID, toUserID string, message *string) (*models.MatchInterest, error) {
	if fromUserID == toUserID {
		return nil, fmt.Errorf("cannot express interest in your own profile")
	}

	sender, err := s.profiles.GetByUserID(ctx, fromUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sender profile: %w", err)
	}
	recipient, err := s.profiles.GetByUserID(ctx, toUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipient profile: %w", err)
	}

	now := time.Now()
	interest := &models.MatchInterest{
		ID:         uuid.New().String(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Message:    message,
		Status:     models.InterestPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.interests.Create(ctx, interest); err != nil {
		return nil, err
	}

	notification := &models.Notification{
		UserID:  toUserID,
		Type:    models.NotificationMatchInterest,
		Title:   "New Match Interest",
		Message: fmt.Sprintf("%s is interested in connecting with you!", sender.FullName),
		Metadata: map[string]any{
			"from_user_id":   fromUserID,
			"from_user_name": sender.FullName,
		},
	}
	email := &EmailRequest{
		To:            recipient.Email,
		Type:          models.NotificationMatchInterest,
		RecipientName: recipient.FullName,
		SenderName:    sender.FullName,
	}
	if message != nil {
		email.Message = *message
	}
	s.notifier.Dispatch(ctx, notification, email)

	return interest, nil
}

// Respond lets the recipient accept or reject a pending interest. The
// sender is notified best-effort; there is no email template for
// responses, so only the in-app channels fire.
func (s *InterestService) Respond(ctx context.Context, userID, interestID, action string) (*models.MatchInterest, error) {
	var status string
	switch action {
	case "accept":
		status = models.InterestAccepted
	case "reject":
		status = models.InterestRejected
	default:
		return nil, fmt.Errorf("invalid action: %s", action)
	}

	interest, err := s.interests.GetByID(ctx, interestID)
	if err != nil {
		return nil, err
	}
	if interest.ToUserID != userID {
		return nil, fmt.Errorf("interest not addressed to you")
	}
	if interest.Status != models.InterestPending {
		return nil, fmt.Errorf("interest already %s", interest.Status)
	}

	if err := s.interests.UpdateStatus(ctx, interestID, status); err != nil {
		return nil, err
	}
	interest.Status = status

	recipient, err := s.profiles.GetByUserID(ctx, userID)
	if err == nil {
		notification := &models.Notification{
			UserID:  interest.FromUserID,
			Type:    models.NotificationInterestResponse,
			Title:   "Interest " + status,
			Message: fmt.Sprintf("%s has %s your interest.", recipient.FullName, status),
			Metadata: map[string]any{
				"interest_id": interest.ID,
				"status":      status,
			},
		}
		s.notifier.Dispatch(ctx, notification, nil)
	}

	return interest, nil
}

// ListSent retrieves the interests sent by a user
func (s *InterestService) ListSent(ctx context.Context, userID string) ([]*models.MatchInterest, error) {
	return s.interests.ListSent(ctx, userID)
}

// ListReceived retrieves the interests addressed to a user with sender
// profile summaries
func (s *InterestService) ListReceived(ctx context.Context, userID string) ([]*models.ReceivedInterest, error) {
	return s.interests.ListReceived(ctx, userID)
}
