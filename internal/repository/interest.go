package repository

import (
	"context"
	"fmt"

	"matrimony-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InterestRepository handles database operations for match interests
type InterestRepository struct {
	db *pgxpool.Pool
}

// NewInterestRepository creates a new interest repository
func NewInterestRepository(db *pgxpool.Pool) *InterestRepository {
	return &InterestRepository{db: db}
}

// Create inserts a new match interest row
func (r *InterestRepository) Create(ctx context.Context, in *models.MatchInterest) error {
	query := `
		INSERT INTO match_interests (id, from_user_id, to_user_id, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		in.ID, in.FromUserID, in.ToUserID, in.Message, in.Status, in.CreatedAt, in.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create match interest: %w", err)
	}
	return nil
}

// GetByID retrieves a match interest by ID
func (r *InterestRepository) GetByID(ctx context.Context, id string) (*models.MatchInterest, error) {
	query := `
		SELECT id, from_user_id, to_user_id, message, status, created_at, updated_at
		FROM match_interests
		WHERE id = $1
	`
	var in models.MatchInterest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&in.ID, &in.FromUserID, &in.ToUserID, &in.Message, &in.Status, &in.CreatedAt, &in.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("match interest not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get match interest: %w", err)
	}
	return &in, nil
}

// ListSent retrieves interests sent by a user
func (r *InterestRepository) ListSent(ctx context.Context, userID string) ([]*models.MatchInterest, error) {
	query := `
		SELECT id, from_user_id, to_user_id, message, status, created_at, updated_at
		FROM match_interests
		WHERE from_user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent interests: %w", err)
	}
	defer rows.Close()

	var interests []*models.MatchInterest
	for rows.Next() {
		var in models.MatchInterest
		err := rows.Scan(
			&in.ID, &in.FromUserID, &in.ToUserID, &in.Message, &in.Status, &in.CreatedAt, &in.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match interest: %w", err)
		}
		interests = append(interests, &in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating match interests: %w", err)
	}

	return interests, nil
}

// ListReceived retrieves interests addressed to a user, each joined with
// the sender's profile summary
func (r *InterestRepository) ListReceived(ctx context.Context, userID string) ([]*models.ReceivedInterest, error) {
	query := `
		SELECT i.id, i.from_user_id, i.to_user_id, i.message, i.status, i.created_at, i.updated_at,
			p.full_name, p.age, p.religion, p.location, p.profile_photo
		FROM match_interests i
		JOIN profiles p ON p.user_id = i.from_user_id
		WHERE i.to_user_id = $1
		ORDER BY i.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list received interests: %w", err)
	}
	defer rows.Close()

	var interests []*models.ReceivedInterest
	for rows.Next() {
		var in models.ReceivedInterest
		err := rows.Scan(
			&in.ID, &in.FromUserID, &in.ToUserID, &in.Message, &in.Status, &in.CreatedAt, &in.UpdatedAt,
			&in.SenderName, &in.SenderAge, &in.SenderReligion, &in.SenderLocation, &in.SenderPhoto,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan received interest: %w", err)
		}
		interests = append(interests, &in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating received interests: %w", err)
	}

	return interests, nil
}

// UpdateStatus sets the status of a match interest
func (r *InterestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE match_interests SET status = $1, updated_at = now() WHERE id = $2`
	result, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update interest status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("match interest not found")
	}
	return nil
}
