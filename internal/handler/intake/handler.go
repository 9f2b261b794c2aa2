package intake

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/injoybeauty/salon-api/internal/model"
	"github.com/injoybeauty/salon-api/internal/service/intake"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
	"github.com/injoybeauty/salon-api/pkg/httputil"
)

type Handler struct {
	service *intake.Service
}

func NewHandler(service *intake.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SubmitForm(c *gin.Context) {
	var req model.CreateIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewInvalidInput(err.Error(), err))
		return
	}

	form, err := h.service.SubmitForm(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, gin.H{
		"form_id": form.ID,
		"message": "Intake form submitted successfully! Jaymie will review your information and contact you soon.",
	})
}

func (h *Handler) ListForms(c *gin.Context) {
	status := model.IntakeStatus(c.Query("status"))

	forms, err := h.service.ListForms(c.Request.Context(), status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{
		"forms": forms,
		"count": len(forms),
	})
}

func (h *Handler) GetForm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewInvalidInput("invalid form ID", err))
		return
	}

	form, err := h.service.GetForm(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, form)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewInvalidInput("invalid form ID", err))
		return
	}

	var req model.UpdateIntakeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewInvalidInput(err.Error(), err))
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"message": "status updated to " + string(req.Status)})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	intake := r.Group("/intake")
	{
		intake.POST("", h.SubmitForm)
		intake.GET("", h.ListForms)
		intake.GET("/:id", h.GetForm)
		intake.PATCH("/:id/status", h.UpdateStatus)
	}
}
