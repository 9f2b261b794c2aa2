package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationStatus string

const (
	NotificationStatusPending  NotificationStatus = "pending"
	NotificationStatusSent     NotificationStatus = "sent"
	NotificationStatusFailed   NotificationStatus = "failed"
	NotificationStatusRetrying NotificationStatus = "retrying"
	NotificationStatusSkipped  NotificationStatus = "skipped"
)

// Notification is an outbox row for a single outgoing email. Bodies are
// rendered at enqueue time so the dispatcher only has to deliver them.
type Notification struct {
	ID          uuid.UUID          `db:"id" json:"id"`
	Recipient   string             `db:"recipient" json:"recipient"`
	ReplyTo     string             `db:"reply_to" json:"reply_to,omitempty"`
	Subject     string             `db:"subject" json:"subject"`
	TextBody    string             `db:"text_body" json:"-"`
	HTMLBody    string             `db:"html_body" json:"-"`
	Status      NotificationStatus `db:"status" json:"status"`
	RetryCount  int                `db:"retry_count" json:"retry_count"`
	LastError   *string            `db:"last_error" json:"last_error,omitempty"`
	NextRetryAt *time.Time         `db:"next_retry_at" json:"next_retry_at,omitempty"`
	SentAt      *time.Time         `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt   time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `db:"updated_at" json:"updated_at"`
}
