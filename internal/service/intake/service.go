package intake

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/injoybeauty/salon-api/internal/model"
	"github.com/injoybeauty/salon-api/internal/repository"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
)

type Notifier interface {
	EnqueueIntakeNotification(ctx context.Context, form *model.IntakeForm) (uuid.UUID, error)
}

type Service struct {
	repo     repository.IntakeRepository
	notifier Notifier
}

func NewService(repo repository.IntakeRepository, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

// SubmitForm stores the intake form and queues the owner notification. The
// conditional fields default the same way the form does: adult, in-salon.
func (s *Service) SubmitForm(ctx context.Context, req *model.CreateIntakeRequest) (*model.IntakeForm, error) {
	form := &model.IntakeForm{
		ClientName:      req.ClientName,
		Email:           req.Email,
		Phone:           req.Phone,
		ClientType:      req.ClientType,
		ServiceLocation: req.ServiceLocation,
		Address:         req.Address,

		ServiceRequested:  req.ServiceRequested,
		HairLength:        req.HairLength,
		DesiredStyle:      req.DesiredStyle,
		DesiredStyleOther: req.DesiredStyleOther,
		HairType:          req.HairType,

		SensitiveToNoise:         req.SensitiveToNoise,
		SensitiveToTouch:         req.SensitiveToTouch,
		DoesNotLikeWater:         req.DoesNotLikeWater,
		NervousAnxious:           req.NervousAnxious,
		EnjoysFidgetToys:         req.EnjoysFidgetToys,
		NeedsWeightedCape:        req.NeedsWeightedCape,
		RequiresQuietEnvironment: req.RequiresQuietEnvironment,
		OtherSensoryNeeds:        req.OtherSensoryNeeds,

		UsesWheelchair:  req.UsesWheelchair,
		LimitedMobility: req.LimitedMobility,
		HasBehaviours:   req.HasBehaviours,
		BehaviourNotes:  req.BehaviourNotes,

		AdditionalNotes: req.AdditionalNotes,
	}
	if form.ClientType == "" {
		form.ClientType = "adult"
	}
	if form.ServiceLocation == "" {
		form.ServiceLocation = "in-salon"
	}
	if form.ServiceLocation == "mobile" && form.Address == "" {
		return nil, apperrors.NewInvalidInput("address is required for mobile appointments", nil)
	}

	if err := s.repo.Create(ctx, form); err != nil {
		return nil, fmt.Errorf("failed to create intake form: %w", err)
	}

	if _, err := s.notifier.EnqueueIntakeNotification(ctx, form); err != nil {
		log.Warn().Err(err).Int64("form_id", form.ID).Msg("failed to queue intake notification")
	}

	return form, nil
}

func (s *Service) GetForm(ctx context.Context, id int64) (*model.IntakeForm, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListForms(ctx context.Context, status model.IntakeStatus) ([]*model.IntakeForm, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.NewInvalidInput(fmt.Sprintf("invalid status %q", status), nil)
	}
	return s.repo.List(ctx, status)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status model.IntakeStatus) error {
	if !status.Valid() {
		return apperrors.NewInvalidInput(
			fmt.Sprintf("invalid status %q: must be one of new, reviewed, contacted, scheduled, completed, archived", status), nil)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
