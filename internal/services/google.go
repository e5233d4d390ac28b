package services

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// GoogleVerifier verifies a Google ID token and returns the verified
// account email
type GoogleVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// GoogleTokenVerifier validates ID tokens against Google's certificates
// for a fixed OAuth client ID
type GoogleTokenVerifier struct {
	clientID string
}

// NewGoogleTokenVerifier creates a new Google token verifier
func NewGoogleTokenVerifier(clientID string) *GoogleTokenVerifier {
	return &GoogleTokenVerifier{clientID: clientID}
}

// Verify checks the token's signature, expiry, and audience, and returns
// the account email. Unverified emails are rejected.
func (v *GoogleTokenVerifier) Verify(ctx context.Context, token string) (string, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return "", fmt.Errorf("failed to validate google token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("google token carries no email")
	}
	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return "", fmt.Errorf("google account email is not verified")
	}

	return email, nil
}
