package services

import (
	"context"
	"testing"

	"matrimony-backend/internal/models"
)

func TestSetApproval(t *testing.T) {
	tests := []struct {
		name      string
		approved  bool
		wantType  string
		wantTitle string
	}{
		{"approve", true, models.NotificationProfileApproved, "Profile Approved"},
		{"revoke", false, models.NotificationProfileRejected, "Profile Update Required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := &fakeProfileStore{}
			profiles.put(&models.Profile{
				ID: "p-1", UserID: "u-1", FullName: "Priya Sharma",
				Email: "priya@example.com", IsApproved: !tt.approved,
			})
			dispatcher := &fakeDispatcher{}
			svc := NewAdminService(profiles, &fakeContactStore{}, dispatcher)

			profile, err := svc.SetApproval(context.Background(), "p-1", tt.approved)
			if err != nil {
				t.Fatalf("SetApproval returned error: %v", err)
			}
			if profile.IsApproved != tt.approved {
				t.Errorf("IsApproved = %v, want %v", profile.IsApproved, tt.approved)
			}

			if len(dispatcher.calls) != 1 {
				t.Fatalf("expected one dispatch, got %d", len(dispatcher.calls))
			}
			call := dispatcher.calls[0]
			if call.notification.UserID != "u-1" {
				t.Errorf("notification goes to %q, want the profile owner", call.notification.UserID)
			}
			if call.notification.Type != tt.wantType {
				t.Errorf("notification type = %q, want %q", call.notification.Type, tt.wantType)
			}
			if call.notification.Title != tt.wantTitle {
				t.Errorf("notification title = %q, want %q", call.notification.Title, tt.wantTitle)
			}
			if call.email == nil || call.email.Type != tt.wantType {
				t.Errorf("email = %+v, want type %q", call.email, tt.wantType)
			}
			if call.email != nil && call.email.To != "priya@example.com" {
				t.Errorf("email recipient = %q", call.email.To)
			}
		})
	}
}

func TestSetApprovalUnknownProfile(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	svc := NewAdminService(&fakeProfileStore{}, &fakeContactStore{}, dispatcher)

	if _, err := svc.SetApproval(context.Background(), "p-missing", true); err == nil {
		t.Fatal("expected error for an unknown profile")
	}
	if len(dispatcher.calls) != 0 {
		t.Errorf("failed approval must not dispatch, got %d calls", len(dispatcher.calls))
	}
}

func TestSetDisabled(t *testing.T) {
	profiles := &fakeProfileStore{}
	profiles.put(&models.Profile{
		ID: "p-1", UserID: "u-1", FullName: "Priya Sharma", IsApproved: true,
	})
	dispatcher := &fakeDispatcher{}
	svc := NewAdminService(profiles, &fakeContactStore{}, dispatcher)

	profile, err := svc.SetDisabled(context.Background(), "p-1", true)
	if err != nil {
		t.Fatalf("SetDisabled returned error: %v", err)
	}
	if !profile.IsDisabled {
		t.Error("profile not disabled")
	}
	if len(dispatcher.calls) != 0 {
		t.Errorf("disabling must not notify the member, got %d calls", len(dispatcher.calls))
	}

	browsable, _ := profiles.ListBrowsable(context.Background(), "u-2")
	if len(browsable) != 0 {
		t.Errorf("disabled profile still browsable: %+v", browsable)
	}
}

func TestMarkMessageRead(t *testing.T) {
	contacts := &fakeContactStore{messages: []*models.ContactMessage{
		{ID: "c-1", Name: "Rahul Mehta", Email: "rahul@example.com", Message: "Hello there, a question."},
	}}
	svc := NewAdminService(&fakeProfileStore{}, contacts, &fakeDispatcher{})

	if err := svc.MarkMessageRead(context.Background(), "c-1"); err != nil {
		t.Fatalf("MarkMessageRead returned error: %v", err)
	}
	if !contacts.messages[0].IsRead {
		t.Error("message not marked read")
	}

	if err := svc.MarkMessageRead(context.Background(), "c-missing"); err == nil {
		t.Error("expected error for an unknown message")
	}
}
