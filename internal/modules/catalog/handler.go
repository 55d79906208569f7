package catalog

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
	rg.GET("/pets/", h.PetChoices)
	rg.GET("/pets/:pet/services/", h.ServicesByPet)
	rg.GET("/services/", h.AllServices)
	rg.POST("/sitter-services/", h.CreateSitterService)
	rg.GET("/sitter-services/:id/", h.SitterServiceDetail)
	rg.GET("/users/:id/sitter-services/", h.ListSitterServicesForUser)
}

func (h *Handler) PetChoices(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.PetChoices())
}

func (h *Handler) ServicesByPet(c *gin.Context) {
	list, err := h.service.ServicesByPet(c.Request.Context(), c.Param("pet"))
	if err != nil {
		if errors.Is(err, ErrInvalidPetType) {
			response.Error(c, http.StatusBadRequest, "Invalid pet")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to list services")
		return
	}
	response.JSON(c, http.StatusOK, toServiceResponses(list))
}

func (h *Handler) AllServices(c *gin.Context) {
	list, err := h.service.AllServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list services")
		return
	}
	response.JSON(c, http.StatusOK, toServiceResponses(list))
}

func (h *Handler) CreateSitterService(c *gin.Context) {
	var req CreateSitterServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "user_id, service_id, address_id, and rate are required")
		return
	}

	ss, err := h.service.CreateSitterService(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidReference):
			response.Error(c, http.StatusBadRequest, "Invalid user_id/service_id/address_id")
		case errors.Is(err, ErrAddressOwnership):
			response.Error(c, http.StatusBadRequest, "address_id does not belong to user_id")
		case errors.Is(err, ErrNotPetsitter):
			response.Error(c, http.StatusBadRequest, "user must be a petsitter")
		case errors.Is(err, ErrInvalidRate):
			response.Error(c, http.StatusBadRequest, "rate must be a positive number")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create sitter service")
		}
		return
	}

	response.JSON(c, http.StatusCreated, ss)
}

func (h *Handler) SitterServiceDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid sitter service id")
		return
	}

	ss, err := h.service.GetSitterService(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load sitter service")
		return
	}
	response.JSON(c, http.StatusOK, ss)
}

func (h *Handler) ListSitterServicesForUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	list, err := h.service.ListSitterServicesForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list sitter services")
		return
	}
	response.JSON(c, http.StatusOK, list)
}
