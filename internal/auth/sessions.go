package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const adminSubject = "admin"

// SessionStore remembers which issued tokens are still logged in.
type SessionStore interface {
	Create(ctx context.Context, id string, ttl time.Duration) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// Session is what a successful login hands back.
type Session struct {
	ID        string
	Token     string
	ExpiresAt time.Time
}

// Manager issues and checks admin session tokens. A token is valid while its
// signature verifies, it has not expired, and its session is still in the
// store; logging out removes the session.
type Manager struct {
	creds    Credentials
	secret   []byte
	ttl      time.Duration
	sessions SessionStore
	now      func() time.Time
}

func NewManager(creds Credentials, secret string, ttl time.Duration, sessions SessionStore) *Manager {
	return &Manager{
		creds:    creds,
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: sessions,
		now:      time.Now,
	}
}

// Login checks the credentials and opens a session.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	if !m.creds.Check(email, password) {
		return nil, ErrInvalidCredentials
	}

	now := m.now()
	session := &Session{
		ID:        uuid.New().String(),
		ExpiresAt: now.Add(m.ttl),
	}
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		ID:        session.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	session.Token = token

	if err := m.sessions.Create(ctx, session.ID, m.ttl); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return session, nil
}

// Verify returns the session id carried by a live token.
func (m *Manager) Verify(ctx context.Context, token string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", err
	}
	ok, err := m.sessions.Exists(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("failed to look up session: %w", err)
	}
	if !ok {
		return "", ErrSessionNotFound
	}
	return claims.ID, nil
}

// Logout ends the session behind token.
func (m *Manager) Logout(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return err
	}
	if err := m.sessions.Delete(ctx, claims.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (m *Manager) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(adminSubject),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
