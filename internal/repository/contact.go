package repository

import (
	"context"
	"fmt"

	"matrimony-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository handles database operations for contact messages
type ContactRepository struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact message
func (r *ContactRepository) Create(ctx context.Context, m *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, phone, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Email, m.Phone, m.Message, m.IsRead, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// ListAll retrieves all contact messages, newest first
func (r *ContactRepository) ListAll(ctx context.Context) ([]*models.ContactMessage, error) {
	query := `
		SELECT id, name, email, phone, message, is_read, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.IsRead, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact messages: %w", err)
	}

	return messages, nil
}

// MarkRead sets a contact message's read flag
func (r *ContactRepository) MarkRead(ctx context.Context, id string) error {
	query := `UPDATE contact_messages SET is_read = TRUE WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark contact message read: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact message not found")
	}
	return nil
}
