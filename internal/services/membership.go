package services

import (
	"context"
	"fmt"
	"time"

	"matrimony-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MembershipService handles the membership catalog and purchases
type MembershipService struct {
	memberships MembershipStore

	now func() time.Time
}

// NewMembershipService creates a new membership service
func NewMembershipService(memberships MembershipStore) *MembershipService {
	return &MembershipService{
		memberships: memberships,
		now:         time.Now,
	}
}

// ListTiers retrieves the active tiers of the catalog
func (s *MembershipService) ListTiers(ctx context.Context) ([]*models.MembershipTier, error) {
	return s.memberships.ListActiveTiers(ctx)
}

// Current retrieves the user's active, unexpired membership, or nil when
// none exists
func (s *MembershipService) Current(ctx context.Context, userID string) (*models.UserMembership, error) {
	m, err := s.memberships.GetCurrent(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// Purchase buys a tier for the user: every prior membership row is
// deactivated and a new active row is inserted, with expiry at purchase
// time plus the tier duration. Both writes happen in one transaction. The
// payment reference is a synthetic placeholder; no payment authorization
// occurs.
func (s *MembershipService) Purchase(ctx context.Context, userID, tierID string) (*models.UserMembership, error) {
	tier, err := s.memberships.GetTierByID(ctx, tierID)
	if err != nil {
		return nil, err
	}
	if !tier.IsActive {
		return nil, fmt.Errorf("membership tier is not available")
	}

	now := s.now()
	paymentRef := fmt.Sprintf("MANUAL_%d", now.UnixMilli())
	membership := &models.UserMembership{
		ID:               uuid.New().String(),
		UserID:           userID,
		TierID:           tier.ID,
		StartsAt:         now,
		ExpiresAt:        now.AddDate(0, 0, tier.DurationDays),
		IsActive:         true,
		PaymentReference: &paymentRef,
		CreatedAt:        now,
	}

	if err := s.memberships.CreateExclusive(ctx, membership); err != nil {
		return nil, err
	}

	return membership, nil
}
