package services

import (
	"context"
	"fmt"
	"time"

	"matrimony-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileService handles profile and partner-preference business logic
type ProfileService struct {
	profiles    ProfileStore
	preferences PreferenceStore
}

// NewProfileService creates a new profile service
func NewProfileService(profiles ProfileStore, preferences PreferenceStore) *ProfileService {
	return &ProfileService{
		profiles:    profiles,
		preferences: preferences,
	}
}

// ProfileUpdate holds the member-editable profile fields
type ProfileUpdate struct {
	FullName string  `json:"full_name"`
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	Religion string  `json:"religion"`
	Location string  `json:"location"`
	Phone    string  `json:"phone"`
	Bio      *string `json:"bio"`
}

// Get retrieves the profile owned by a user
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// Update applies the member-editable fields to the user's profile
func (s *ProfileService) Update(ctx context.Context, userID string, upd ProfileUpdate) (*models.Profile, error) {
	if upd.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if upd.Age < 18 {
		return nil, fmt.Errorf("age must be at least 18")
	}

	p := &models.Profile{
		UserID:   userID,
		FullName: upd.FullName,
		Age:      upd.Age,
		Gender:   upd.Gender,
		Religion: upd.Religion,
		Location: upd.Location,
		Phone:    upd.Phone,
		Bio:      upd.Bio,
	}
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}

	return s.profiles.GetByUserID(ctx, userID)
}

// PreferencesUpdate holds the editable preference fields
type PreferencesUpdate struct {
	MinAge                *int    `json:"min_age"`
	MaxAge                *int    `json:"max_age"`
	PreferredReligion     *string `json:"preferred_religion"`
	PreferredLocation     *string `json:"preferred_location"`
	AdditionalPreferences *string `json:"additional_preferences"`
}

// GetPreferences retrieves the user's preferences, or nil when none have
// been saved yet
func (s *ProfileService) GetPreferences(ctx context.Context, userID string) (*models.Preferences, error) {
	prefs, err := s.preferences.GetByUserID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return prefs, nil
}

// SavePreferences upserts the user's preferences row: update when one
// already exists, insert otherwise.
func (s *ProfileService) SavePreferences(ctx context.Context, userID string, upd PreferencesUpdate) (*models.Preferences, error) {
	if upd.MinAge != nil && upd.MaxAge != nil && *upd.MinAge > *upd.MaxAge {
		return nil, fmt.Errorf("minimum age cannot exceed maximum age")
	}

	prefs := &models.Preferences{
		UserID:                userID,
		MinAge:                upd.MinAge,
		MaxAge:                upd.MaxAge,
		PreferredReligion:     upd.PreferredReligion,
		PreferredLocation:     upd.PreferredLocation,
		AdditionalPreferences: upd.AdditionalPreferences,
	}

	_, err := s.preferences.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		if err := s.preferences.Update(ctx, prefs); err != nil {
			return nil, err
		}
	case err == pgx.ErrNoRows:
		now := time.Now()
		prefs.ID = uuid.New().String()
		prefs.CreatedAt = now
		prefs.UpdatedAt = now
		if err := s.preferences.Create(ctx, prefs); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.preferences.GetByUserID(ctx, userID)
}
