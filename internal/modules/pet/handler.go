package pet

import (
	"errors"
	"net/http"
	"strconv"

	"petsitter/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/pets/create/", h.Create)
	rg.GET("/users/:id/pets/", h.ListForUser)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "user_id, name, and pet are required")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidReference):
			response.Error(c, http.StatusBadRequest, "Invalid user_id")
		case errors.Is(err, ErrInvalidPetType):
			response.Error(c, http.StatusBadRequest, "Invalid pet type")
		case errors.Is(err, ErrNotNormalUser):
			response.Error(c, http.StatusBadRequest, "Only normal users can create pets")
		case errors.Is(err, ErrAgeNotNumeric):
			response.Error(c, http.StatusBadRequest, "Age must be a number")
		case errors.Is(err, ErrAgeNegative):
			response.Error(c, http.StatusBadRequest, "Age must be positive")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create pet")
		}
		return
	}

	response.JSON(c, http.StatusCreated, toPetResponse(*p))
}

func (h *Handler) ListForUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	pets, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list pets")
		return
	}

	out := make([]PetResponse, 0, len(pets))
	for _, p := range pets {
		out = append(out, toPetResponse(p))
	}
	response.JSON(c, http.StatusOK, out)
}
