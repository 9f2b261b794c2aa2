package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/injoybeauty/salon-api/internal/model"
	"github.com/injoybeauty/salon-api/internal/repository"
)

type Notifier interface {
	EnqueueContactNotification(ctx context.Context, msg *model.ContactMessage) (uuid.UUID, error)
}

type Service struct {
	repo     repository.ContactRepository
	notifier Notifier
}

func NewService(repo repository.ContactRepository, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

// SubmitMessage stores the message and queues the owner notification. A
// notification failure does not fail the submission.
func (s *Service) SubmitMessage(ctx context.Context, req *model.CreateContactRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	if _, err := s.notifier.EnqueueContactNotification(ctx, msg); err != nil {
		log.Warn().Err(err).Int64("message_id", msg.ID).Msg("failed to queue contact notification")
	}

	return msg, nil
}

func (s *Service) ListMessages(ctx context.Context, unreadOnly bool) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, unreadOnly)
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkRead(ctx, id)
}
