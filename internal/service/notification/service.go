package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/injoybeauty/salon-api/internal/model"
	"github.com/injoybeauty/salon-api/internal/repository"
)

// Service enqueues outgoing emails through the notifications outbox. Enqueue
// happens inside the submitting request; delivery is the dispatcher's job, so
// the caller's success path never waits on SMTP.
type Service struct {
	repo     repository.NotificationRepository
	notifyTo string
	business string
}

func NewService(repo repository.NotificationRepository, notifyTo, business string) *Service {
	return &Service{
		repo:     repo,
		notifyTo: notifyTo,
		business: business,
	}
}

func (s *Service) EnqueueIntakeNotification(ctx context.Context, form *model.IntakeForm) (uuid.UUID, error) {
	subject, textBody, htmlBody, err := renderIntake(form, s.business)
	if err != nil {
		return uuid.Nil, err
	}
	return s.enqueue(ctx, form.Email, subject, textBody, htmlBody)
}

func (s *Service) EnqueueContactNotification(ctx context.Context, msg *model.ContactMessage) (uuid.UUID, error) {
	subject, textBody, htmlBody, err := renderContact(msg, s.business)
	if err != nil {
		return uuid.Nil, err
	}
	return s.enqueue(ctx, msg.Email, subject, textBody, htmlBody)
}

func (s *Service) enqueue(ctx context.Context, replyTo, subject, textBody, htmlBody string) (uuid.UUID, error) {
	now := time.Now()
	n := &model.Notification{
		ID:        uuid.New(),
		Recipient: s.notifyTo,
		ReplyTo:   replyTo,
		Subject:   subject,
		TextBody:  textBody,
		HTMLBody:  htmlBody,
		Status:    model.NotificationStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return uuid.Nil, fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return n.ID, nil
}
