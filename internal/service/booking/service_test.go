package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/injoybeauty/salon-api/internal/model"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
)

type fakeBookingRepo struct {
	bookings  map[int64]*model.Booking
	nextID    int64
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*model.Booking), nextID: 1}
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *model.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	b.ID = r.nextID
	r.nextID++
	b.Status = model.BookingStatusPending
	b.CreatedAt = time.Now()
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *fakeBookingRepo) Get(ctx context.Context, id int64) (*model.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, apperrors.NewNotFound("booking", nil)
	}
	return b, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return apperrors.NewNotFound("booking", nil)
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) ListBusyIntervals(ctx context.Context, date string) ([]model.BusyInterval, error) {
	return nil, nil
}

type fakeServiceRepo struct {
	services map[int64]*model.Service
}

func (r *fakeServiceRepo) List(ctx context.Context, activeOnly bool) ([]*model.Service, error) {
	return nil, nil
}

func (r *fakeServiceRepo) ListByCategory(ctx context.Context, category string) ([]*model.Service, error) {
	return nil, nil
}

func (r *fakeServiceRepo) ListCategories(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (r *fakeServiceRepo) Get(ctx context.Context, id int64) (*model.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, apperrors.NewNotFound("service", nil)
	}
	return s, nil
}

func fixedClock(date string) func() time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newTestService(repo *fakeBookingRepo) *Service {
	services := &fakeServiceRepo{services: map[int64]*model.Service{
		1: {ID: 1, Name: "Signature Cut", Duration: 60, Price: 85},
	}}
	return NewService(repo, services, fixedClock("2026-09-01"))
}

func validRequest() *model.CreateBookingRequest {
	return &model.CreateBookingRequest{
		ServiceID:   1,
		ClientName:  "Dana Reyes",
		ClientEmail: "dana@example.com",
		BookingDate: "2026-09-02",
		BookingTime: "15:30",
	}
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo)

	created, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, model.BookingStatusPending, created.Status)
	assert.Equal(t, "2026-09-02", created.BookingDate)
	assert.Equal(t, "15:30", created.BookingTime)
}

func TestCreateBooking_TodayIsAllowed(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	req := validRequest()
	req.BookingDate = "2026-09-01"

	_, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateBooking_RejectsPastDate(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	req := validRequest()
	req.BookingDate = "2026-08-31"

	_, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestCreateBooking_UnknownService(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	req := validRequest()
	req.ServiceID = 42

	_, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestCreateBooking_PropagatesConflict(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.createErr = apperrors.NewConflict("this time slot has just been booked", nil)
	svc := newTestService(repo)

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestUpdateBookingStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo)

	created, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	err = svc.UpdateBookingStatus(context.Background(), created.ID, model.BookingStatusConfirmed)
	require.NoError(t, err)

	got, err := svc.GetBooking(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, got.Status)
}

func TestUpdateBookingStatus_InvalidStatus(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	err := svc.UpdateBookingStatus(context.Background(), 1, model.BookingStatus("rescheduled"))
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestUpdateBookingStatus_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	err := svc.UpdateBookingStatus(context.Background(), 99, model.BookingStatusCancelled)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
