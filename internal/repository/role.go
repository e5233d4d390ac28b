package repository

import (
	"context"
	"fmt"

	"matrimony-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RoleRepository handles database operations for user roles
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create grants a role to a user
func (r *RoleRepository) Create(ctx context.Context, role *models.UserRole) error {
	query := `
		INSERT INTO user_roles (id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, role.ID, role.UserID, role.Role, role.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user role: %w", err)
	}
	return nil
}

// ListByUser retrieves the roles held by a user
func (r *RoleRepository) ListByUser(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT role FROM user_roles WHERE user_id = $1`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("failed to scan user role: %w", err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user roles: %w", err)
	}

	return roles, nil
}

// HasAnyRole reports whether the user holds any of the given roles
func (r *RoleRepository) HasAnyRole(ctx context.Context, userID string, roles ...string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_roles WHERE user_id = $1 AND role::text = ANY($2))`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, roles).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user role: %w", err)
	}
	return exists, nil
}
