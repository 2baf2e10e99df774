package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	models "io.winapps.portfolio/internal/models/contact"
)

// ContactRepository persists messages sent through the contact form.
type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Save(ctx context.Context, m models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, client_ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query, m.ID, m.Name, m.Email, m.Subject, m.Message, m.ClientIP, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

// Recent returns the latest messages, newest first.
func (r *ContactRepository) Recent(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	query := `
		SELECT id::text, name, email, subject, message, COALESCE(client_ip, ''), created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.ClientIP, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contact messages: %w", err)
	}
	return messages, nil
}
