package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/injoybeauty/salon-api/internal/model"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
)

func (r *contactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	msg.CreatedAt = time.Now()

	err := r.db.GetContext(ctx, &msg.ID, query,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *contactRepository) List(ctx context.Context, unreadOnly bool) ([]*model.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, is_read, created_at
		FROM contact_messages
	`
	if unreadOnly {
		query += " WHERE NOT is_read"
	}
	query += " ORDER BY created_at DESC"

	var messages []*model.ContactMessage
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

func (r *contactRepository) MarkRead(ctx context.Context, id int64) error {
	query := `
		UPDATE contact_messages
		SET is_read = TRUE
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark message as read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound("message", nil)
	}
	return nil
}
