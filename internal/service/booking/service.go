package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/injoybeauty/salon-api/internal/model"
	"github.com/injoybeauty/salon-api/internal/repository"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
)

type Service struct {
	repo     repository.BookingRepository
	services repository.ServiceRepository
	now      func() time.Time
}

// NewService takes the clock as a parameter so past-date rejection is
// testable without the system time.
func NewService(repo repository.BookingRepository, services repository.ServiceRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:     repo,
		services: services,
		now:      now,
	}
}

// CreateBooking validates the request and persists the reservation. The date
// must not be before today; the time slot must not be taken, which the
// storage layer enforces with a unique constraint so a concurrent loser gets
// a conflict instead of a silent double-booking.
func (s *Service) CreateBooking(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	if _, err := s.services.Get(ctx, req.ServiceID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewInvalidInput("invalid service selected", err)
		}
		return nil, fmt.Errorf("failed to look up service: %w", err)
	}

	date, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, apperrors.NewInvalidInput("invalid date format, use YYYY-MM-DD", err)
	}

	today := s.now()
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if date.Before(todayDate) {
		return nil, apperrors.NewInvalidInput("cannot book appointments in the past", nil)
	}

	booking := &model.Booking{
		ServiceID:   req.ServiceID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		BookingDate: req.BookingDate,
		BookingTime: req.BookingTime,
		Notes:       req.Notes,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// Re-read for the joined service fields.
	created, err := s.repo.Get(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created booking: %w", err)
	}
	return created, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*model.Booking, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) error {
	if !status.Valid() {
		return apperrors.NewInvalidInput(
			fmt.Sprintf("invalid status %q: must be one of pending, confirmed, cancelled", status), nil)
	}

	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}

	return s.repo.UpdateStatus(ctx, id, status)
}
