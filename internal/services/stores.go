package services

import (
	"context"

	"matrimony-backend/internal/models"
)

// Store interfaces consumed by the services. The repository package
// provides the pgx-backed implementations.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdatePushToken(ctx context.Context, userID string, pushToken *string) error
}

type ProfileStore interface {
	Create(ctx context.Context, p *models.Profile) error
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) error
	UpdatePhoto(ctx context.Context, userID string, photoURL *string) error
	ListBrowsable(ctx context.Context, excludeUserID string) ([]*models.Profile, error)
	ListAll(ctx context.Context) ([]*models.Profile, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	SetDisabled(ctx context.Context, id string, disabled bool) error
}

type PreferenceStore interface {
	GetByUserID(ctx context.Context, userID string) (*models.Preferences, error)
	Create(ctx context.Context, p *models.Preferences) error
	Update(ctx context.Context, p *models.Preferences) error
}

type InterestStore interface {
	Create(ctx context.Context, in *models.MatchInterest) error
	GetByID(ctx context.Context, id string) (*models.MatchInterest, error)
	ListSent(ctx context.Context, userID string) ([]*models.MatchInterest, error)
	ListReceived(ctx context.Context, userID string) ([]*models.ReceivedInterest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkEmailed(ctx context.Context, id string) error
}

type MembershipStore interface {
	ListActiveTiers(ctx context.Context) ([]*models.MembershipTier, error)
	GetTierByID(ctx context.Context, id string) (*models.MembershipTier, error)
	GetCurrent(ctx context.Context, userID string) (*models.UserMembership, error)
	CreateExclusive(ctx context.Context, m *models.UserMembership) error
}

type ContactStore interface {
	Create(ctx context.Context, m *models.ContactMessage) error
	ListAll(ctx context.Context) ([]*models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
}

type RoleStore interface {
	Create(ctx context.Context, role *models.UserRole) error
	ListByUser(ctx context.Context, userID string) ([]string, error)
	HasAnyRole(ctx context.Context, userID string, roles ...string) (bool, error)
}
