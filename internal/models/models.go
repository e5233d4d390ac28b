package models

import "time"

// Roles stored in the user_roles table.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

// Match interest statuses.
const (
	InterestPending  = "pending"
	InterestAccepted = "accepted"
	InterestRejected = "rejected"
)

// Notification types. The first three map to the fixed email templates.
const (
	NotificationMatchInterest    = "match_interest"
	NotificationProfileApproved  = "profile_approved"
	NotificationProfileRejected  = "profile_rejected"
	NotificationInterestResponse = "interest_response"
)

// User represents an authenticated account
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	PushToken    *string   `json:"push_token,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile represents one member's matrimonial details
type Profile struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	FullName     string    `json:"full_name"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	Religion     string    `json:"religion"`
	Location     string    `json:"location"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Bio          *string   `json:"bio,omitempty"`
	ProfilePhoto *string   `json:"profile_photo,omitempty"`
	IsApproved   bool      `json:"is_approved"`
	IsDisabled   bool      `json:"is_disabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Preferences holds a member's partner preferences, at most one row per user
type Preferences struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	MinAge                *int      `json:"min_age,omitempty"`
	MaxAge                *int      `json:"max_age,omitempty"`
	PreferredReligion     *string   `json:"preferred_religion,omitempty"`
	PreferredLocation     *string   `json:"preferred_location,omitempty"`
	AdditionalPreferences *string   `json:"additional_preferences,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// MatchInterest is a one-directional expression of interest between two members
type MatchInterest struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	Message    *string   `json:"message,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReceivedInterest is an interest addressed to the caller, enriched with
// the sender's profile summary
type ReceivedInterest struct {
	MatchInterest
	SenderName     string  `json:"sender_name"`
	SenderAge      int     `json:"sender_age"`
	SenderReligion string  `json:"sender_religion"`
	SenderLocation string  `json:"sender_location"`
	SenderPhoto    *string `json:"sender_photo,omitempty"`
}

// Notification is an in-app notification row for one user
type Notification struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	IsRead    bool           `json:"is_read"`
	IsEmailed bool           `json:"is_emailed"`
	CreatedAt time.Time      `json:"created_at"`
}

// MembershipTier is a purchasable catalog entry
type MembershipTier struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"duration_days"`
	Features     []string  `json:"features"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserMembership is one purchased membership period for a user
type UserMembership struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	TierID           string    `json:"tier_id"`
	StartsAt         time.Time `json:"starts_at"`
	ExpiresAt        time.Time `json:"expires_at"`
	IsActive         bool      `json:"is_active"`
	PaymentReference *string   `json:"payment_reference,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ContactMessage is a public contact form submission
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRole grants a role to a user
type UserRole struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
