package services

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"matrimony-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const jwtExpDays = 30

// AuthService handles registration, login, and token validation
type AuthService struct {
	users     UserStore
	profiles  ProfileStore
	roles     RoleStore
	jwtSecret string
	google    GoogleVerifier
}

// NewAuthService creates a new auth service. The Google verifier may be
// nil when OAuth sign-in is not configured.
func NewAuthService(users UserStore, profiles ProfileStore, roles RoleStore, jwtSecret string, google GoogleVerifier) *AuthService {
	return &AuthService{
		users:     users,
		profiles:  profiles,
		roles:     roles,
		jwtSecret: jwtSecret,
		google:    google,
	}
}

// Register creates a user account, seeds a bare profile row holding only
// the account email, and grants the default role. Returns the user and a
// signed token.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, string, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", fmt.Errorf("invalid email address")
	}
	if len(password) < 8 {
		return nil, "", fmt.Errorf("password must be at least 8 characters")
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, "", fmt.Errorf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.createAccount(ctx, email, string(hash))
	if err != nil {
		return nil, "", err
	}

	token, err := s.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// createAccount inserts the user row, seeds the bare profile holding only
// the account email, and grants the default role.
func (s *AuthService) createAccount(ctx context.Context, email, passwordHash string) (*models.User, error) {
	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile := &models.Profile{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	role := &models.UserRole{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Role:      models.RoleUser,
		CreatedAt: now,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to create user role: %w", err)
	}

	return user, nil
}

// LoginWithGoogle exchanges a Google ID token for a session. First
// sign-in creates the account with no usable password; the bare profile
// and default role are seeded the same as a password registration.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (*models.User, string, error) {
	if s.google == nil {
		return nil, "", fmt.Errorf("google sign-in is not configured")
	}

	email, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, "", fmt.Errorf("invalid google token")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		user, err = s.createAccount(ctx, email, "")
		if err != nil {
			return nil, "", err
		}
	}

	token, err := s.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and returns the user and a signed token.
// A disabled profile may still log in; moderation only hides it from the
// match listing.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}

	token, err := s.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// GetMe returns the user, their profile, and their roles
func (s *AuthService) GetMe(ctx context.Context, userID string) (*models.User, *models.Profile, []string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get profile: %w", err)
	}

	roles, err := s.roles.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get roles: %w", err)
	}

	return user, profile, roles, nil
}

// UpdatePushToken stores or clears the user's push token
func (s *AuthService) UpdatePushToken(ctx context.Context, userID string, token *string) error {
	return s.users.UpdatePushToken(ctx, userID, token)
}

// GenerateJWT generates a JWT token for a user
func (s *AuthService) GenerateJWT(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().AddDate(0, 0, jwtExpDays).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateJWT validates a JWT token and returns the user ID
func (s *AuthService) ValidateJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", fmt.Errorf("user_id not found in token")
	}

	return userID, nil
}
