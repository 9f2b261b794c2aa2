package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/injoybeauty/salon-api/internal/model"
	"github.com/injoybeauty/salon-api/internal/service/availability"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
)

type stubBusyLister struct {
	intervals []model.BusyInterval
}

func (s *stubBusyLister) ListBusyIntervals(ctx context.Context, date string) ([]model.BusyInterval, error) {
	return s.intervals, nil
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

func newTestRouter(busy []model.BusyInterval) *gin.Engine {
	gin.SetMode(gin.TestMode)

	availabilityService := availability.NewService(
		&stubBusyLister{intervals: busy},
		&stubDurationResolver{durations: map[int64]int{7: 120}},
		availability.Window{Open: 540, Close: 1080},
		30,
	)

	h := NewHandler(nil, availabilityService)
	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func doRequest(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)
	return w
}

func TestGetAvailableTimes_ContractShape(t *testing.T) {
	r := newTestRouter(nil)

	w := doRequest(t, r, "/api/available-times?date=2026-09-01")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Date           string   `json:"date"`
		AvailableTimes []string `json:"available_times"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "2026-09-01", body.Date)
	require.NotEmpty(t, body.AvailableTimes)
	assert.Equal(t, "09:00", body.AvailableTimes[0])
	assert.Equal(t, "17:00", body.AvailableTimes[len(body.AvailableTimes)-1])
}

func TestGetAvailableTimes_MissingDate(t *testing.T) {
	r := newTestRouter(nil)

	w := doRequest(t, r, "/api/available-times")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailableTimes_MalformedDate(t *testing.T) {
	r := newTestRouter(nil)

	w := doRequest(t, r, "/api/available-times?date=September+1st")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailableTimes_BadServiceID(t *testing.T) {
	r := newTestRouter(nil)

	w := doRequest(t, r, "/api/available-times?date=2026-09-01&service_id=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailableTimes_UnknownServiceIDStillSucceeds(t *testing.T) {
	r := newTestRouter(nil)

	w := doRequest(t, r, "/api/available-times?date=2026-09-01&service_id=999")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAvailableTimes_ServiceDurationApplied(t *testing.T) {
	r := newTestRouter(nil)

	w := doRequest(t, r, "/api/available-times?date=2026-09-01&service_id=7")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		AvailableTimes []string `json:"available_times"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "16:00", body.AvailableTimes[len(body.AvailableTimes)-1])
}

func TestGetAvailableTimes_FullyBookedDay(t *testing.T) {
	r := newTestRouter([]model.BusyInterval{{Start: 540, Duration: 540}})

	w := doRequest(t, r, "/api/available-times?date=2026-09-01")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		AvailableTimes []string `json:"available_times"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotNil(t, body.AvailableTimes)
	assert.Empty(t, body.AvailableTimes)
}
