package gallery

import (
	"github.com/gin-gonic/gin"

	"github.com/injoybeauty/salon-api/internal/service/gallery"
	"github.com/injoybeauty/salon-api/pkg/httputil"
)

type Handler struct {
	service *gallery.Service
}

func NewHandler(service *gallery.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListImages(c *gin.Context) {
	images, err := h.service.ListImages(c.Request.Context(), c.Query("category"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, images)
}

func (h *Handler) ListFeatured(c *gin.Context) {
	images, err := h.service.ListFeatured(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, images)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, categories)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	gallery := r.Group("/gallery")
	{
		gallery.GET("", h.ListImages)
		gallery.GET("/featured", h.ListFeatured)
		gallery.GET("/categories", h.ListCategories)
	}
}
