package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	models "io.winapps.portfolio/internal/models/contact"
)

var ErrInvalidMessage = errors.New("invalid contact message")

// Column widths of the contact_messages table.
const (
	maxNameLength    = 255
	maxEmailLength   = 255
	maxSubjectLength = 500
)

type Repository interface {
	Save(ctx context.Context, m models.ContactMessage) error
}

// Notifier tells the site owner about a new message.
type Notifier interface {
	NotifyContact(ctx context.Context, m models.ContactMessage) error
}

type Service struct {
	repo     Repository
	notifier Notifier
	logger   *zap.SugaredLogger
	now      func() time.Time
}

// NewService creates the contact service. notifier may be nil.
func NewService(repo Repository, notifier Notifier, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit stores a message and then notifies the owner. A failed notification
// is logged but does not fail the submission.
func (s *Service) Submit(ctx context.Context, req models.ContactRequest, clientIP string) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		ClientIP:  clientIP,
		CreatedAt: s.now().UTC(),
	}
	if err := validate(msg); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyContact(ctx, msg); err != nil {
			s.logger.Warnw("failed to notify about contact message", "contact_id", msg.ID, "error", err)
		}
	}
	return &msg, nil
}

func validate(m models.ContactMessage) error {
	if m.Name == "" || m.Email == "" || m.Subject == "" || m.Message == "" {
		return fmt.Errorf("%w: all fields are required", ErrInvalidMessage)
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("%w: malformed email", ErrInvalidMessage)
	}
	if utf8.RuneCountInString(m.Name) > maxNameLength ||
		utf8.RuneCountInString(m.Email) > maxEmailLength ||
		utf8.RuneCountInString(m.Subject) > maxSubjectLength {
		return fmt.Errorf("%w: field too long", ErrInvalidMessage)
	}
	return nil
}
