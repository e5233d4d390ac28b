package repository

import (
	"context"
	"fmt"

	"matrimony-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PreferenceRepository handles database operations for partner preferences
type PreferenceRepository struct {
	db *pgxpool.Pool
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetByUserID retrieves the preferences row owned by a user
func (r *PreferenceRepository) GetByUserID(ctx context.Context, userID string) (*models.Preferences, error) {
	query := `
		SELECT id, user_id, min_age, max_age, preferred_religion, preferred_location,
			additional_preferences, created_at, updated_at
		FROM preferences
		WHERE user_id = $1
	`
	var p models.Preferences
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.MinAge, &p.MaxAge, &p.PreferredReligion,
		&p.PreferredLocation, &p.AdditionalPreferences, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &p, nil
}

// Create inserts a new preferences row
func (r *PreferenceRepository) Create(ctx context.Context, p *models.Preferences) error {
	query := `
		INSERT INTO preferences (id, user_id, min_age, max_age, preferred_religion,
			preferred_location, additional_preferences, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.UserID, p.MinAge, p.MaxAge, p.PreferredReligion,
		p.PreferredLocation, p.AdditionalPreferences, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create preferences: %w", err)
	}
	return nil
}

// Update updates the preferences row owned by a user
func (r *PreferenceRepository) Update(ctx context.Context, p *models.Preferences) error {
	query := `
		UPDATE preferences
		SET min_age = $1, max_age = $2, preferred_religion = $3, preferred_location = $4,
			additional_preferences = $5, updated_at = now()
		WHERE user_id = $6
	`
	result, err := r.db.Exec(ctx, query,
		p.MinAge, p.MaxAge, p.PreferredReligion, p.PreferredLocation,
		p.AdditionalPreferences, p.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("preferences not found")
	}
	return nil
}
