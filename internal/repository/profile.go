package repository

import (
	"context"
	"fmt"

	"matrimony-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `id, user_id, full_name, age, gender, religion, location, phone,
	email, bio, profile_photo, is_approved, is_disabled, created_at, updated_at`

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Age, &p.Gender, &p.Religion, &p.Location,
		&p.Phone, &p.Email, &p.Bio, &p.ProfilePhoto, &p.IsApproved, &p.IsDisabled,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, p *models.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, full_name, age, gender, religion, location,
			phone, email, bio, profile_photo, is_approved, is_disabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.UserID, p.FullName, p.Age, p.Gender, p.Religion, p.Location,
		p.Phone, p.Email, p.Bio, p.ProfilePhoto, p.IsApproved, p.IsDisabled,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetByUserID retrieves the profile owned by a user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("profile not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// GetByID retrieves a profile by its row ID
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("profile not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// Update updates the member-editable profile fields
func (r *ProfileRepository) Update(ctx context.Context, p *models.Profile) error {
	query := `
		UPDATE profiles
		SET full_name = $1, age = $2, gender = $3, religion = $4, location = $5,
			phone = $6, bio = $7, updated_at = now()
		WHERE user_id = $8
	`
	result, err := r.db.Exec(ctx, query,
		p.FullName, p.Age, p.Gender, p.Religion, p.Location, p.Phone, p.Bio, p.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found")
	}
	return nil
}

// UpdatePhoto sets or clears the profile photo URL
func (r *ProfileRepository) UpdatePhoto(ctx context.Context, userID string, photoURL *string) error {
	query := `UPDATE profiles SET profile_photo = $1, updated_at = now() WHERE user_id = $2`
	result, err := r.db.Exec(ctx, query, photoURL, userID)
	if err != nil {
		return fmt.Errorf("failed to update profile photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found")
	}
	return nil
}

// ListBrowsable retrieves all approved, non-disabled profiles excluding the
// given user, newest first
func (r *ProfileRepository) ListBrowsable(ctx context.Context, excludeUserID string) ([]*models.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE is_approved = TRUE AND is_disabled = FALSE AND user_id <> $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, excludeUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}

// ListAll retrieves all profiles for moderation, newest first
func (r *ProfileRepository) ListAll(ctx context.Context) ([]*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}

// SetApproved flips the moderation approval flag
func (r *ProfileRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	query := `UPDATE profiles SET is_approved = $1, updated_at = now() WHERE id = $2`
	result, err := r.db.Exec(ctx, query, approved, id)
	if err != nil {
		return fmt.Errorf("failed to update approval flag: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found")
	}
	return nil
}

// SetDisabled flips the moderation disabled flag
func (r *ProfileRepository) SetDisabled(ctx context.Context, id string, disabled bool) error {
	query := `UPDATE profiles SET is_disabled = $1, updated_at = now() WHERE id = $2`
	result, err := r.db.Exec(ctx, query, disabled, id)
	if err != nil {
		return fmt.Errorf("failed to update disabled flag: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found")
	}
	return nil
}
