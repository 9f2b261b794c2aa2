package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/injoybeauty/salon-api/internal/model"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
)

type stubBusyLister struct {
	intervals []model.BusyInterval
	err       error
	calls     int
}

func (s *stubBusyLister) ListBusyIntervals(ctx context.Context, date string) ([]model.BusyInterval, error) {
	s.calls++
	return s.intervals, s.err
}

type stubDurationResolver struct {
	durations map[int64]int
}

func (s *stubDurationResolver) DurationMinutes(ctx context.Context, serviceID int64) (int, error) {
	d, ok := s.durations[serviceID]
	if !ok {
		return 0, apperrors.NewNotFound("service", nil)
	}
	return d, nil
}

func newTestService(busy *stubBusyLister, durations map[int64]int) *Service {
	return NewService(busy, &stubDurationResolver{durations: durations}, Window{Open: 540, Close: 1080}, 30)
}

func TestAvailableTimes_FormatsAsClock(t *testing.T) {
	svc := newTestService(&stubBusyLister{}, nil)

	result, err := svc.AvailableTimes(context.Background(), "2026-09-01", nil)
	require.NoError(t, err)

	assert.Equal(t, "2026-09-01", result.Date)
	require.NotEmpty(t, result.AvailableTimes)
	assert.Equal(t, "09:00", result.AvailableTimes[0])
	assert.Equal(t, "17:00", result.AvailableTimes[len(result.AvailableTimes)-1])
}

func TestAvailableTimes_InvalidDate(t *testing.T) {
	svc := newTestService(&stubBusyLister{}, nil)

	for _, date := range []string{"", "not-a-date", "01-09-2026", "2026/09/01", "2026-13-40"} {
		_, err := svc.AvailableTimes(context.Background(), date, nil)
		require.Error(t, err, "date %q", date)
		assert.True(t, apperrors.IsInvalidInput(err))
	}
}

func TestAvailableTimes_UsesServiceDuration(t *testing.T) {
	svc := newTestService(&stubBusyLister{}, map[int64]int{7: 120})

	id := int64(7)
	result, err := svc.AvailableTimes(context.Background(), "2026-09-01", &id)
	require.NoError(t, err)

	// 120-minute services cannot start after 16:00.
	assert.Equal(t, "16:00", result.AvailableTimes[len(result.AvailableTimes)-1])
}

func TestAvailableTimes_UnknownServiceFallsBack(t *testing.T) {
	svc := newTestService(&stubBusyLister{}, map[int64]int{7: 120})

	unknown := int64(999)
	withUnknown, err := svc.AvailableTimes(context.Background(), "2026-09-01", &unknown)
	require.NoError(t, err)

	withDefault, err := svc.AvailableTimes(context.Background(), "2026-09-01", nil)
	require.NoError(t, err)

	assert.Equal(t, withDefault.AvailableTimes, withUnknown.AvailableTimes)
}

func TestAvailableTimes_ExcludesBookedSlots(t *testing.T) {
	busy := &stubBusyLister{intervals: []model.BusyInterval{{Start: 600, Duration: 60}}}
	svc := newTestService(busy, nil)

	result, err := svc.AvailableTimes(context.Background(), "2026-09-01", nil)
	require.NoError(t, err)

	assert.NotContains(t, result.AvailableTimes, "09:30")
	assert.NotContains(t, result.AvailableTimes, "10:00")
	assert.NotContains(t, result.AvailableTimes, "10:30")
	assert.Contains(t, result.AvailableTimes, "11:00")
}

func TestAvailableTimes_ReadsBusyIntervalsEveryCall(t *testing.T) {
	busy := &stubBusyLister{}
	svc := newTestService(busy, nil)

	_, err := svc.AvailableTimes(context.Background(), "2026-09-01", nil)
	require.NoError(t, err)
	_, err = svc.AvailableTimes(context.Background(), "2026-09-01", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, busy.calls)
}

func TestAvailableTimes_EmptyResultIsNotAnError(t *testing.T) {
	busy := &stubBusyLister{intervals: []model.BusyInterval{{Start: 540, Duration: 540}}}
	svc := newTestService(busy, nil)

	result, err := svc.AvailableTimes(context.Background(), "2026-09-01", nil)
	require.NoError(t, err)
	assert.Empty(t, result.AvailableTimes)
	assert.NotNil(t, result.AvailableTimes)
}
