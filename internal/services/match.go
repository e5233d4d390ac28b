package services

import (
	"context"
	"strings"

	"matrimony-backend/internal/models"
)

// MatchFilter holds the browse criteria. Nil/empty fields are inactive.
type MatchFilter struct {
	MinAge   *int
	MaxAge   *int
	Religion string
	Location string
}

// MatchService handles the browsable match listing
type MatchService struct {
	profiles  ProfileStore
	interests InterestStore
}

// NewMatchService creates a new match service
func NewMatchService(profiles ProfileStore, interests InterestStore) *MatchService {
	return &MatchService{
		profiles:  profiles,
		interests: interests,
	}
}

// Browse retrieves the approved, non-disabled profiles of other members
// and applies the filter. The result is always a subset of the unfiltered
// list, in source order.
func (s *MatchService) Browse(ctx context.Context, userID string, filter MatchFilter) ([]*models.Profile, error) {
	profiles, err := s.profiles.ListBrowsable(ctx, userID)
	if err != nil {
		return nil, err
	}
	return FilterProfiles(profiles, filter), nil
}

// SentInterests retrieves the interests the user has sent, which the
// client uses to flag profiles already contacted
func (s *MatchService) SentInterests(ctx context.Context, userID string) ([]*models.MatchInterest, error) {
	return s.interests.ListSent(ctx, userID)
}

// FilterProfiles returns the profiles satisfying every active criterion:
// age within [min,max], religion equality, case-insensitive location
// substring. A religion filter of "all" is inactive.
func FilterProfiles(profiles []*models.Profile, f MatchFilter) []*models.Profile {
	filtered := make([]*models.Profile, 0, len(profiles))
	location := strings.ToLower(f.Location)

	for _, p := range profiles {
		if f.MinAge != nil && p.Age < *f.MinAge {
			continue
		}
		if f.MaxAge != nil && p.Age > *f.MaxAge {
			continue
		}
		if f.Religion != "" && f.Religion != "all" && p.Religion != f.Religion {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(p.Location), location) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}
