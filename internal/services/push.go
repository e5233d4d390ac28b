package services

import (
	"context"
	"fmt"

	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/certificate"
	"github.com/sideshow/apns2/payload"
)

// PushSender delivers a mobile push notification to a device token
type PushSender interface {
	Push(ctx context.Context, deviceToken, title, body string) error
}

// APNSSender sends pushes through Apple's push service
type APNSSender struct {
	client *apns2.Client
	topic  string
}

// NewAPNSSender creates a push sender from a .p12 certificate
func NewAPNSSender(certPath, certPassword, topic string, production bool) (*APNSSender, error) {
	cert, err := certificate.FromP12File(certPath, certPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to load APNs certificate: %w", err)
	}

	client := apns2.NewClient(cert)
	if production {
		client = client.Production()
	} else {
		client = client.Development()
	}

	return &APNSSender{client: client, topic: topic}, nil
}

// Push sends an alert notification to the device
func (s *APNSSender) Push(ctx context.Context, deviceToken, title, body string) error {
	p := payload.NewPayload().AlertTitle(title).AlertBody(body).Sound("default")

	notification := &apns2.Notification{
		DeviceToken: deviceToken,
		Topic:       s.topic,
		Payload:     p,
	}

	res, err := s.client.PushWithContext(ctx, notification)
	if err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}
	if !res.Sent() {
		return fmt.Errorf("push rejected: %s", res.Reason)
	}

	return nil
}
