package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/injoybeauty/salon-api/internal/email"
	"github.com/injoybeauty/salon-api/internal/model"
	"github.com/injoybeauty/salon-api/internal/repository"
	"github.com/injoybeauty/salon-api/pkg/logger"
)

type NotifierConfig struct {
	BatchSize     int
	PollInterval  time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

// Notifier drains the notifications outbox and delivers each email. Failed
// deliveries are retried with a linear backoff until the attempt budget is
// spent.
type Notifier struct {
	repo   repository.NotificationRepository
	sender email.Sender
	config NotifierConfig
	logger *logger.Logger
	now    func() time.Time
}

func NewNotifier(repo repository.NotificationRepository, sender email.Sender, config NotifierConfig, logger *logger.Logger) *Notifier {
	if config.BatchSize <= 0 {
		panic("BatchSize must be greater than 0")
	}
	if config.PollInterval <= 0 {
		panic("PollInterval must be greater than 0")
	}
	if config.RetryAttempts <= 0 {
		panic("RetryAttempts must be greater than 0")
	}
	if config.RetryDelay <= 0 {
		panic("RetryDelay must be greater than 0")
	}

	return &Notifier{
		repo:   repo,
		sender: sender,
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

func (n *Notifier) Start(ctx context.Context) {
	ticker := time.NewTicker(n.config.PollInterval)
	defer ticker.Stop()

	n.logger.Info("Starting notification dispatcher")

	for {
		select {
		case <-ctx.Done():
			n.logger.Info("Shutting down notification dispatcher")
			return
		case <-ticker.C:
			if err := n.ProcessBatch(ctx); err != nil {
				n.logger.Error(err, "Failed to process notifications")
			}
		}
	}
}

// ProcessBatch delivers one batch of due notifications.
func (n *Notifier) ProcessBatch(ctx context.Context) error {
	due, err := n.repo.ListDue(ctx, n.config.BatchSize, n.now())
	if err != nil {
		return fmt.Errorf("failed to list due notifications: %w", err)
	}

	for _, notification := range due {
		if err := n.process(ctx, notification); err != nil {
			n.logger.Error(err, "Failed to deliver notification",
				"notification_id", notification.ID.String())
		}
	}
	return nil
}

func (n *Notifier) process(ctx context.Context, notification *model.Notification) error {
	if !n.sender.Configured() {
		// Matches the original deployment behavior: without SMTP credentials
		// submissions still succeed, the email is simply recorded as skipped.
		notification.Status = model.NotificationStatusSkipped
		notification.UpdatedAt = n.now()
		return n.repo.Update(ctx, notification)
	}

	msg := &email.Message{
		To:       notification.Recipient,
		ReplyTo:  notification.ReplyTo,
		Subject:  notification.Subject,
		TextBody: notification.TextBody,
		HTMLBody: notification.HTMLBody,
	}

	if err := n.sender.Send(ctx, msg); err != nil {
		n.recordFailure(ctx, notification, err)
		return err
	}

	now := n.now()
	notification.Status = model.NotificationStatusSent
	notification.SentAt = &now
	notification.UpdatedAt = now
	notification.LastError = nil
	notification.NextRetryAt = nil
	return n.repo.Update(ctx, notification)
}

func (n *Notifier) recordFailure(ctx context.Context, notification *model.Notification, sendErr error) {
	notification.RetryCount++
	errStr := sendErr.Error()
	notification.LastError = &errStr
	notification.UpdatedAt = n.now()

	if notification.RetryCount >= n.config.RetryAttempts {
		notification.Status = model.NotificationStatusFailed
		notification.NextRetryAt = nil
	} else {
		notification.Status = model.NotificationStatusRetrying
		next := n.now().Add(n.config.RetryDelay * time.Duration(notification.RetryCount))
		notification.NextRetryAt = &next
	}

	if err := n.repo.Update(ctx, notification); err != nil {
		n.logger.Error(err, "Failed to update notification status",
			"notification_id", notification.ID.String())
	}
}
