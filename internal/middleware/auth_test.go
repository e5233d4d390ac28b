package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubValidator struct {
	userID string
	err    error
}

func (s *stubValidator) ValidateJWT(token string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.userID, nil
}

type stubRoleChecker struct {
	allow bool
	err   error
}

func (s *stubRoleChecker) HasAnyRole(ctx context.Context, userID string, roles ...string) (bool, error) {
	return s.allow, s.err
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		validator  *stubValidator
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid token",
			header:     "Bearer good-token",
			validator:  &stubValidator{userID: "u-1"},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			header:     "",
			validator:  &stubValidator{userID: "u-1"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not bearer",
			header:     "Basic dXNlcjpwYXNz",
			validator:  &stubValidator{userID: "u-1"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer bad-token",
			validator:  &stubValidator{err: fmt.Errorf("expired")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID = GetUserID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(tt.validator)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if nextCalled != tt.wantNext {
				t.Errorf("next called = %v, want %v", nextCalled, tt.wantNext)
			}
			if tt.wantNext && gotUserID != "u-1" {
				t.Errorf("user ID in context = %q, want u-1", gotUserID)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		checker    *stubRoleChecker
		wantStatus int
		wantNext   bool
	}{
		{"allowed", "u-1", &stubRoleChecker{allow: true}, http.StatusOK, true},
		{"forbidden", "u-1", &stubRoleChecker{allow: false}, http.StatusForbidden, false},
		{"no user in context", "", &stubRoleChecker{allow: true}, http.StatusUnauthorized, false},
		{"checker failure", "u-1", &stubRoleChecker{err: fmt.Errorf("db down")}, http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/profiles", nil)
			if tt.userID != "" {
				req = req.WithContext(context.WithValue(req.Context(), userIDKey, tt.userID))
			}
			rec := httptest.NewRecorder()

			RequireRole(tt.checker, "admin", "moderator")(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if nextCalled != tt.wantNext {
				t.Errorf("next called = %v, want %v", nextCalled, tt.wantNext)
			}
		})
	}
}

func TestGetUserIDMissing(t *testing.T) {
	if got := GetUserID(context.Background()); got != "" {
		t.Errorf("GetUserID on empty context = %q, want empty", got)
	}
}

func TestValidateWebSocketToken(t *testing.T) {
	userID, err := ValidateWebSocketToken("good-token", &stubValidator{userID: "u-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "u-1" {
		t.Errorf("userID = %q, want u-1", userID)
	}

	if _, err := ValidateWebSocketToken("", &stubValidator{userID: "u-1"}); err == nil {
		t.Error("expected error for empty token")
	}
	if _, err := ValidateWebSocketToken("bad", &stubValidator{err: fmt.Errorf("bad")}); err == nil {
		t.Error("expected error for invalid token")
	}
}
