package repository

import (
	"context"
	"fmt"

	"matrimony-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MembershipRepository handles database operations for membership tiers
// and user memberships
type MembershipRepository struct {
	db *pgxpool.Pool
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// ListActiveTiers retrieves the active tiers of the catalog, cheapest first
func (r *MembershipRepository) ListActiveTiers(ctx context.Context) ([]*models.MembershipTier, error) {
	query := `
		SELECT id, name, price, duration_days, features, is_active, created_at
		FROM membership_tiers
		WHERE is_active = TRUE
		ORDER BY price ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list membership tiers: %w", err)
	}
	defer rows.Close()

	var tiers []*models.MembershipTier
	for rows.Next() {
		var t models.MembershipTier
		err := rows.Scan(&t.ID, &t.Name, &t.Price, &t.DurationDays, &t.Features, &t.IsActive, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership tier: %w", err)
		}
		tiers = append(tiers, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership tiers: %w", err)
	}

	return tiers, nil
}

// GetTierByID retrieves a tier by ID
func (r *MembershipRepository) GetTierByID(ctx context.Context, id string) (*models.MembershipTier, error) {
	query := `
		SELECT id, name, price, duration_days, features, is_active, created_at
		FROM membership_tiers
		WHERE id = $1
	`
	var t models.MembershipTier
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Price, &t.DurationDays, &t.Features, &t.IsActive, &t.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("membership tier not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get membership tier: %w", err)
	}
	return &t, nil
}

// GetCurrent retrieves the user's active, unexpired membership with the
// latest expiry, or pgx.ErrNoRows when none exists
func (r *MembershipRepository) GetCurrent(ctx context.Context, userID string) (*models.UserMembership, error) {
	query := `
		SELECT id, user_id, tier_id, starts_at, expires_at, is_active, payment_reference, created_at
		FROM user_memberships
		WHERE user_id = $1 AND is_active = TRUE AND expires_at > now()
		ORDER BY expires_at DESC
		LIMIT 1
	`
	var m models.UserMembership
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.ID, &m.UserID, &m.TierID, &m.StartsAt, &m.ExpiresAt,
		&m.IsActive, &m.PaymentReference, &m.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get current membership: %w", err)
	}
	return &m, nil
}

// CreateExclusive deactivates every membership the user holds and inserts
// the new one, in a single transaction. Either both writes land or neither
// does, so the user is never left without an active row after a partial
// failure.
func (r *MembershipRepository) CreateExclusive(ctx context.Context, m *models.UserMembership) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `UPDATE user_memberships SET is_active = FALSE WHERE user_id = $1`, m.UserID)
	if err != nil {
		return fmt.Errorf("failed to deactivate memberships: %w", err)
	}

	query := `
		INSERT INTO user_memberships (id, user_id, tier_id, starts_at, expires_at, is_active, payment_reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.Exec(ctx, query,
		m.ID, m.UserID, m.TierID, m.StartsAt, m.ExpiresAt, m.IsActive, m.PaymentReference, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit membership purchase: %w", err)
	}
	return nil
}
