package ad

import (
	"net/http"

	"petsitter/internal/pkg/response"
	"petsitter/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type CreateAdRequest struct {
	PunchLine string `json:"punch_line" validate:"max=255"`
	URL       string `json:"url" validate:"omitempty,url"`
	ImageURL  string `json:"image_url" validate:"omitempty,url"`
	IsActive  *bool  `json:"is_active"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ads/", h.List)
	rg.POST("/ads/", h.Create)
}

func (h *Handler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	ads, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list ads")
		return
	}
	response.JSON(c, http.StatusOK, ads)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.Error(c, http.StatusBadRequest, "punch_line must fit 255 characters and urls must be valid")
		return
	}

	// New ads run by default unless explicitly disabled.
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	a, err := h.service.Create(c.Request.Context(), req.PunchLine, req.URL, req.ImageURL, isActive)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create ad")
		return
	}
	response.JSON(c, http.StatusCreated, a)
}
