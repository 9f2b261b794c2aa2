package contact

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/injoybeauty/salon-api/internal/model"
	"github.com/injoybeauty/salon-api/internal/service/contact"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
	"github.com/injoybeauty/salon-api/pkg/httputil"
)

type Handler struct {
	service *contact.Service
}

func NewHandler(service *contact.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SubmitMessage(c *gin.Context) {
	var req model.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewInvalidInput(err.Error(), err))
		return
	}

	msg, err := h.service.SubmitMessage(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, gin.H{
		"id":      msg.ID,
		"message": "Your message has been sent successfully. We will get back to you soon!",
	})
}

// ListMessages is an admin endpoint; like the rest of the admin surface it is
// intentionally left unauthenticated.
func (h *Handler) ListMessages(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	messages, err := h.service.ListMessages(c.Request.Context(), unreadOnly)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, messages)
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewInvalidInput("invalid message ID", err))
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"message": "message marked as read"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	contact := r.Group("/contact")
	{
		contact.POST("", h.SubmitMessage)
		contact.GET("/messages", h.ListMessages)
		contact.PATCH("/messages/:id/read", h.MarkRead)
	}
}
