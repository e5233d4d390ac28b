package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"matrimony-backend/internal/models"
)

func TestRenderEmail(t *testing.T) {
	tests := []struct {
		name        string
		req         EmailRequest
		wantSubject string
		wantInBody  []string
		notInBody   []string
	}{
		{
			name: "match interest with message",
			req: EmailRequest{
				Type:          models.NotificationMatchInterest,
				RecipientName: "Anjali",
				SenderName:    "Priya",
				Message:       "Would love to connect",
			},
			wantSubject: "💕 Someone is interested in your profile!",
			wantInBody:  []string{"Anjali", "Priya", "Would love to connect", "Their message:"},
		},
		{
			name: "match interest without message",
			req: EmailRequest{
				Type:          models.NotificationMatchInterest,
				RecipientName: "Anjali",
				SenderName:    "Priya",
			},
			wantSubject: "💕 Someone is interested in your profile!",
			wantInBody:  []string{"Anjali", "Priya"},
			notInBody:   []string{"Their message:"},
		},
		{
			name: "profile approved",
			req: EmailRequest{
				Type:          models.NotificationProfileApproved,
				RecipientName: "Priya",
			},
			wantSubject: "✨ Your Profile Has Been Approved!",
			wantInBody:  []string{"Congratulations, Priya!", "visible to other members"},
		},
		{
			name: "profile rejected",
			req: EmailRequest{
				Type:          models.NotificationProfileRejected,
				RecipientName: "Priya",
			},
			wantSubject: "Profile Update Required",
			wantInBody:  []string{"Profile Update Needed", "Priya"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, html, err := RenderEmail(tt.req)
			if err != nil {
				t.Fatalf("RenderEmail returned error: %v", err)
			}
			if subject != tt.wantSubject {
				t.Errorf("subject = %q, want %q", subject, tt.wantSubject)
			}
			for _, s := range tt.wantInBody {
				if !strings.Contains(html, s) {
					t.Errorf("body missing %q", s)
				}
			}
			for _, s := range tt.notInBody {
				if strings.Contains(html, s) {
					t.Errorf("body unexpectedly contains %q", s)
				}
			}
		})
	}
}

func TestRenderEmailUnknownType(t *testing.T) {
	_, _, err := RenderEmail(EmailRequest{Type: "password_reset"})
	if err == nil {
		t.Fatal("expected error for an unknown notification type")
	}
}

func TestResendMailerSend(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := &ResendMailer{
		apiKey:   "re_test_key",
		from:     "Aish Marriage Bureau <onboarding@resend.dev>",
		endpoint: srv.URL,
		client:   &http.Client{Timeout: time.Second},
	}

	err := m.Send(context.Background(), EmailRequest{
		To:            "anjali@example.com",
		Type:          models.NotificationMatchInterest,
		RecipientName: "Anjali",
		SenderName:    "Priya",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if gotAuth != "Bearer re_test_key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody["from"] != "Aish Marriage Bureau <onboarding@resend.dev>" {
		t.Errorf("from = %v", gotBody["from"])
	}
	to, ok := gotBody["to"].([]any)
	if !ok || len(to) != 1 || to[0] != "anjali@example.com" {
		t.Errorf("to = %v", gotBody["to"])
	}
	if gotBody["subject"] != "💕 Someone is interested in your profile!" {
		t.Errorf("subject = %v", gotBody["subject"])
	}
}

func TestResendMailerSendProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid to address"}`))
	}))
	defer srv.Close()

	m := &ResendMailer{
		apiKey:   "re_test_key",
		from:     "test <test@example.com>",
		endpoint: srv.URL,
		client:   &http.Client{Timeout: time.Second},
	}

	err := m.Send(context.Background(), EmailRequest{
		To:            "anjali@example.com",
		Type:          models.NotificationProfileApproved,
		RecipientName: "Anjali",
	})
	if err == nil {
		t.Fatal("expected error for a non-2xx response")
	}
	if !strings.Contains(err.Error(), "422") {
		t.Errorf("error %q does not include the status code", err)
	}
}
