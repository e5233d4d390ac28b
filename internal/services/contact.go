package services

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"matrimony-backend/internal/models"

	"github.com/google/uuid"
)

// ContactInput is a public contact form submission
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ValidationError marks input the caller can correct. Handlers map it to
// a 400 response; any other error is a server fault.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ValidateContact checks the form fields. It mirrors the limits the
// public form enforces: name 2..100, email well-formed and at most 255,
// phone at most 20, message 10..1000.
func ValidateContact(in ContactInput) error {
	if len(in.Name) < 2 {
		return validationErrorf("name is required")
	}
	if len(in.Name) > 100 {
		return validationErrorf("name must be at most 100 characters")
	}
	if len(in.Email) > 255 {
		return validationErrorf("email must be at most 255 characters")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return validationErrorf("invalid email address")
	}
	if len(in.Phone) > 20 {
		return validationErrorf("phone must be at most 20 characters")
	}
	if len(in.Message) < 10 {
		return validationErrorf("message must be at least 10 characters")
	}
	if len(in.Message) > 1000 {
		return validationErrorf("message must be at most 1000 characters")
	}
	return nil
}

// ContactService handles contact form submissions
type ContactService struct {
	contacts ContactStore
}

// NewContactService creates a new contact service
func NewContactService(contacts ContactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

// Submit validates the input and stores the message. Validation failures
// happen before any write.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	if err := ValidateContact(in); err != nil {
		return nil, err
	}

	msg := &models.ContactMessage{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	if in.Phone != "" {
		msg.Phone = &in.Phone
	}

	if err := s.contacts.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}
