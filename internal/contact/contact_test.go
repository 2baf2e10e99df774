package contact

import (
	"context"
	"errors"
	"strings"
	"testing"

	"firebase.google.com/go/v4/messaging"

	models "io.winapps.portfolio/internal/models/contact"
)

type fakeRepo struct {
	saved []models.ContactMessage
	err   error
}

func (r *fakeRepo) Save(ctx context.Context, m models.ContactMessage) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, m)
	return nil
}

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (s *fakeSender) Send(ctx context.Context, m *messaging.Message) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, m)
	return "projects/test/messages/1", nil
}

func validRequest() models.ContactRequest {
	return models.ContactRequest{
		Name:    " Ada ",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Nice portfolio",
	}
}

func TestSubmitSavesAndNotifies(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{}
	svc := NewService(repo, NewFCMNotifier(sender, "contact-messages"), nil)

	msg, err := svc.Submit(context.Background(), validRequest(), "10.0.0.1")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if msg.ID == "" || msg.Name != "Ada" || msg.ClientIP != "10.0.0.1" {
		t.Errorf("Submit() message = %+v", msg)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved %d messages, want 1", len(repo.saved))
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(sender.sent))
	}
	if got := sender.sent[0]; got.Topic != "contact-messages" || got.Data["contactId"] != msg.ID {
		t.Errorf("notification topic=%q data=%v", got.Topic, got.Data)
	}
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		edit func(*models.ContactRequest)
	}{
		{"blank name", func(r *models.ContactRequest) { r.Name = "  " }},
		{"blank message", func(r *models.ContactRequest) { r.Message = "" }},
		{"malformed email", func(r *models.ContactRequest) { r.Email = "not-an-email" }},
		{"name too long", func(r *models.ContactRequest) { r.Name = strings.Repeat("a", 256) }},
		{"subject too long", func(r *models.ContactRequest) { r.Subject = strings.Repeat("é", 501) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo, nil, nil)
			req := validRequest()
			tt.edit(&req)

			_, err := svc.Submit(context.Background(), req, "")
			if !errors.Is(err, ErrInvalidMessage) {
				t.Fatalf("Submit() error = %v, want ErrInvalidMessage", err)
			}
			if len(repo.saved) != 0 {
				t.Errorf("saved %d messages, want 0", len(repo.saved))
			}
		})
	}
}

func TestSubmitStorageFailure(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(&fakeRepo{err: errors.New("connection refused")}, NewFCMNotifier(sender, "t"), nil)

	if _, err := svc.Submit(context.Background(), validRequest(), ""); err == nil {
		t.Fatal("Submit() error = nil, want storage error")
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent %d notifications after failed save, want 0", len(sender.sent))
	}
}

func TestSubmitSurvivesNotificationFailure(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, NewFCMNotifier(&fakeSender{err: errors.New("quota")}, "t"), nil)

	if _, err := svc.Submit(context.Background(), validRequest(), ""); err != nil {
		t.Fatalf("Submit() error = %v, want nil", err)
	}
	if len(repo.saved) != 1 {
		t.Errorf("saved %d messages, want 1", len(repo.saved))
	}
}

func TestSubmitAcceptsFieldsAtColumnWidth(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil, nil)
	req := validRequest()
	req.Name = strings.Repeat("é", 255)
	req.Subject = strings.Repeat("s", 500)

	if _, err := svc.Submit(context.Background(), req, ""); err != nil {
		t.Fatalf("Submit() error = %v, want nil", err)
	}
	if len(repo.saved) != 1 {
		t.Errorf("saved %d messages, want 1", len(repo.saved))
	}
}
