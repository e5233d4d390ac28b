package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// EmailRequest is the contract of the notification-email function:
// it selects one of the three fixed templates by Type.
type EmailRequest struct {
	To            string `json:"to"`
	Type          string `json:"type"`
	RecipientName string `json:"recipientName"`
	SenderName    string `json:"senderName,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Mailer sends a notification email
type Mailer interface {
	Send(ctx context.Context, req EmailRequest) error
}

const matchInterestHTML = `
<div style="font-family: 'Georgia', serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #FFE4E6, #FFF5F5); padding: 30px; border-radius: 16px;">
    <h1 style="color: #BE123C; margin-bottom: 20px;">You Have a New Match Interest!</h1>
    <p style="color: #374151; font-size: 16px; line-height: 1.6;">Dear {{.RecipientName}},</p>
    <p style="color: #374151; font-size: 16px; line-height: 1.6;">
      Great news! <strong>{{.SenderName}}</strong> has expressed interest in connecting with you on Aish Marriage Bureau.
    </p>
    {{if .Message}}
    <div style="background: white; padding: 16px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #BE123C;">
      <p style="color: #6B7280; font-size: 14px; margin-bottom: 8px;">Their message:</p>
      <p style="color: #374151; font-size: 16px; font-style: italic;">"{{.Message}}"</p>
    </div>
    {{end}}
    <p style="color: #374151; font-size: 16px; line-height: 1.6;">
      Log in to your dashboard to view their profile and respond to their interest.
    </p>
  </div>
  <p style="color: #9CA3AF; font-size: 12px; text-align: center; margin-top: 20px;">
    Aish Marriage Bureau - Finding Your Perfect Match
  </p>
</div>`

const profileApprovedHTML = `
<div style="font-family: 'Georgia', serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #DCFCE7, #F0FDF4); padding: 30px; border-radius: 16px;">
    <h1 style="color: #166534; margin-bottom: 20px;">Congratulations, {{.RecipientName}}!</h1>
    <p style="color: #374151; font-size: 16px; line-height: 1.6;">
      Your profile has been reviewed and approved by our team. Your profile is now visible to other members.
    </p>
    <p style="color: #374151; font-size: 16px; line-height: 1.6;">You can now:</p>
    <ul style="color: #374151; font-size: 16px; line-height: 1.8;">
      <li>Browse and connect with other profiles</li>
      <li>Receive match interests from others</li>
      <li>Update your preferences anytime</li>
    </ul>
  </div>
  <p style="color: #9CA3AF; font-size: 12px; text-align: center; margin-top: 20px;">
    Aish Marriage Bureau - Finding Your Perfect Match
  </p>
</div>`

const profileRejectedHTML = `
<div style="font-family: 'Georgia', serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #FEF3C7, #FFFBEB); padding: 30px; border-radius: 16px;">
    <h1 style="color: #92400E; margin-bottom: 20px;">Profile Update Needed</h1>
    <p style="color: #374151; font-size: 16px; line-height: 1.6;">Dear {{.RecipientName}},</p>
    <p style="color: #374151; font-size: 16px; line-height: 1.6;">
      Your profile needs some updates before it can be approved. Please log in to your dashboard
      and ensure all information is complete and accurate.
    </p>
  </div>
  <p style="color: #9CA3AF; font-size: 12px; text-align: center; margin-top: 20px;">
    Aish Marriage Bureau - Finding Your Perfect Match
  </p>
</div>`

var emailTemplates = map[string]struct {
	subject string
	tmpl    *template.Template
}{
	"match_interest": {
		subject: "💕 Someone is interested in your profile!",
		tmpl:    template.Must(template.New("match_interest").Parse(matchInterestHTML)),
	},
	"profile_approved": {
		subject: "✨ Your Profile Has Been Approved!",
		tmpl:    template.Must(template.New("profile_approved").Parse(profileApprovedHTML)),
	},
	"profile_rejected": {
		subject: "Profile Update Required",
		tmpl:    template.Must(template.New("profile_rejected").Parse(profileRejectedHTML)),
	},
}

// RenderEmail renders the subject and HTML body for a request. Unknown
// types are an error.
func RenderEmail(req EmailRequest) (subject, html string, err error) {
	entry, ok := emailTemplates[req.Type]
	if !ok {
		return "", "", fmt.Errorf("invalid notification type: %s", req.Type)
	}

	var buf bytes.Buffer
	if err := entry.tmpl.Execute(&buf, req); err != nil {
		return "", "", fmt.Errorf("failed to render email template: %w", err)
	}
	return entry.subject, buf.String(), nil
}

// ResendMailer sends notification emails through the Resend API
type ResendMailer struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

// NewResendMailer creates a new Resend mailer
func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		apiKey:   apiKey,
		from:     from,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Send renders the template for the request and forwards it to Resend
// with the bearer credential
func (m *ResendMailer) Send(ctx context.Context, req EmailRequest) error {
	subject, html, err := RenderEmail(req)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]any{
		"from":    m.from,
		"to":      []string{req.To},
		"subject": subject,
		"html":    html,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
