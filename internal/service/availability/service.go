package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/injoybeauty/salon-api/internal/model"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
)

// DefaultDurationMinutes is used when the requested service cannot be
// resolved. A deliberate fallback, not an error.
const DefaultDurationMinutes = 60

type BusyLister interface {
	ListBusyIntervals(ctx context.Context, date string) ([]model.BusyInterval, error)
}

type DurationResolver interface {
	DurationMinutes(ctx context.Context, serviceID int64) (int, error)
}

type Service struct {
	bookings    BusyLister
	catalog     DurationResolver
	window      Window
	granularity int
}

func NewService(bookings BusyLister, catalog DurationResolver, window Window, granularity int) *Service {
	return &Service{
		bookings:    bookings,
		catalog:     catalog,
		window:      window,
		granularity: granularity,
	}
}

// TimesResult is the availability listing for one date.
type TimesResult struct {
	Date           string   `json:"date"`
	AvailableTimes []string `json:"available_times"`
}

// AvailableTimes lists the bookable HH:MM start times for a date. serviceID
// is optional; an unknown or absent id falls back to the default duration.
// Busy intervals are read fresh on every call.
func (s *Service) AvailableTimes(ctx context.Context, date string, serviceID *int64) (*TimesResult, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, apperrors.NewInvalidInput("invalid date format, use YYYY-MM-DD", err)
	}

	duration := DefaultDurationMinutes
	if serviceID != nil {
		d, err := s.catalog.DurationMinutes(ctx, *serviceID)
		switch {
		case apperrors.IsNotFound(err):
			// keep the default
		case err != nil:
			return nil, fmt.Errorf("failed to resolve service duration: %w", err)
		default:
			duration = d
		}
	}

	busy, err := s.bookings.ListBusyIntervals(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list busy intervals: %w", err)
	}

	slots, err := ComputeAvailableSlots(s.window, s.granularity, duration, busy)
	if err != nil {
		return nil, err
	}

	times := make([]string, 0, len(slots))
	for _, slot := range slots {
		times = append(times, slot.Clock())
	}

	return &TimesResult{Date: date, AvailableTimes: times}, nil
}
