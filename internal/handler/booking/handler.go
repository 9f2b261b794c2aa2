package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/injoybeauty/salon-api/internal/model"
	"github.com/injoybeauty/salon-api/internal/service/availability"
	"github.com/injoybeauty/salon-api/internal/service/booking"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
	"github.com/injoybeauty/salon-api/pkg/httputil"
)

type Handler struct {
	service      *booking.Service
	availability *availability.Service
}

func NewHandler(service *booking.Service, availability *availability.Service) *Handler {
	return &Handler{
		service:      service,
		availability: availability,
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewInvalidInput(err.Error(), err))
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, created)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewInvalidInput("invalid booking ID", err))
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, b)
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewInvalidInput("invalid booking ID", err))
		return
	}

	var req model.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewInvalidInput(err.Error(), err))
		return
	}

	if err := h.service.UpdateBookingStatus(c.Request.Context(), id, req.Status); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"message": "booking status updated"})
}

// GetAvailableTimes responds with the fixed contract consumed by the booking
// widget: {"date": "...", "available_times": ["HH:MM", ...]}.
func (h *Handler) GetAvailableTimes(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httputil.RespondWithError(c, apperrors.NewInvalidInput("date is required", nil))
		return
	}

	var serviceID *int64
	if raw := c.Query("service_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httputil.RespondWithError(c, apperrors.NewInvalidInput("invalid service ID", err))
			return
		}
		serviceID = &id
	}

	result, err := h.availability.AvailableTimes(c.Request.Context(), date, serviceID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBooking)
		bookings.PATCH("/:id/status", h.UpdateBookingStatus)
	}

	r.GET("/available-times", h.GetAvailableTimes)
}
