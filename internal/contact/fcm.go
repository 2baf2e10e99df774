package contact

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"

	models "io.winapps.portfolio/internal/models/contact"
)

// Sender is the part of the FCM client the notifier needs.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMNotifier pushes new contact messages to an FCM topic the owner's
// devices subscribe to.
type FCMNotifier struct {
	sender Sender
	topic  string
}

func NewFCMNotifier(sender Sender, topic string) *FCMNotifier {
	return &FCMNotifier{sender: sender, topic: topic}
}

func (n *FCMNotifier) NotifyContact(ctx context.Context, m models.ContactMessage) error {
	title := fmt.Sprintf("New message from %s", m.Name)
	message := &messaging.Message{
		Topic: n.topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  m.Subject,
		},
		Data: map[string]string{
			"contactId": m.ID,
			"email":     m.Email,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: title,
						Body:  m.Subject,
					},
					Sound: "default",
				},
			},
		},
	}

	if _, err := n.sender.Send(ctx, message); err != nil {
		return fmt.Errorf("error sending contact notification: %w", err)
	}
	return nil
}
