package order

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"petsitter/internal/domain"
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
	rg.POST("/orders/", h.Create)
	rg.GET("/users/:id/orders/", h.ListForUser)
	rg.PATCH("/orders/:id/approve/", h.Approve)
	rg.PATCH("/orders/:id/complete/", h.Complete)
	rg.PATCH("/orders/:id/message-to-petsitter/", h.MessageToPetsitter)
	rg.PATCH("/orders/:id/message-to-user/", h.MessageToUser)
	rg.PATCH("/orders/:id/review/", h.AddReview)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest,
			"normal_user_id, petsitter_user_id, service_model_id, pet_id, user_address_id, start_datetime are required")
		return
	}

	o, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, o)
}

func (h *Handler) ListForUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	orders, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list orders")
		return
	}
	response.JSON(c, http.StatusOK, orders)
}

func (h *Handler) Approve(c *gin.Context) {
	h.transition(c, h.service.Approve)
}

func (h *Handler) Complete(c *gin.Context) {
	h.transition(c, h.service.Complete)
}

func (h *Handler) transition(c *gin.Context, apply func(context.Context, int64) (*domain.Order, error)) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Order not found")
		return
	}

	o, err := apply(c.Request.Context(), orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, o)
}

func (h *Handler) MessageToPetsitter(c *gin.Context) {
	h.message(c, h.service.MessageToPetsitter)
}

func (h *Handler) MessageToUser(c *gin.Context) {
	h.message(c, h.service.MessageToUser)
}

func (h *Handler) message(c *gin.Context, apply func(context.Context, int64, string) (*domain.Order, error)) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Order not found")
		return
	}

	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "message is required")
		return
	}

	o, err := apply(c.Request.Context(), orderID, req.Message)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, o)
}

func (h *Handler) AddReview(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Order or user not found")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "user_id and review are required")
		return
	}

	o, err := h.service.AddReview(c.Request.Context(), orderID, req)
	if err != nil {
		h.writeReviewError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, o)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidReference):
		response.Error(c, http.StatusBadRequest, "Invalid user, service_model, pet, or address ID")
	case errors.Is(err, ErrQuantityNotNumeric):
		response.Error(c, http.StatusBadRequest, "Quantity must be a number")
	case errors.Is(err, ErrQuantityNotPositive):
		response.Error(c, http.StatusBadRequest, "Quantity must be positive")
	case errors.Is(err, ErrInvalidDatetime):
		response.Error(c, http.StatusBadRequest, "Invalid start_datetime format. Use ISO format")
	case errors.Is(err, ErrNormalUserRole):
		response.Error(c, http.StatusBadRequest, "normal_user_id must be a normal user")
	case errors.Is(err, ErrPetsitterRole):
		response.Error(c, http.StatusBadRequest, "petsitter_user_id must be a petsitter")
	case errors.Is(err, ErrPetOwnership):
		response.Error(c, http.StatusBadRequest, "pet_id must belong to normal_user_id")
	case errors.Is(err, ErrAddressOwnership):
		response.Error(c, http.StatusBadRequest, "user_address_id must belong to normal_user_id")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Order not found")
	default:
		response.Error(c, http.StatusInternalServerError, "Failed to process order")
	}
}

func (h *Handler) writeReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRatingNotNumeric):
		response.Error(c, http.StatusBadRequest, "Rating must be a number")
	case errors.Is(err, ErrRatingOutOfRange):
		response.Error(c, http.StatusBadRequest, "Rating must be between 1 and 5")
	case errors.Is(err, ErrNotParticipant):
		response.Error(c, http.StatusBadRequest, "User not part of this order")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Order or user not found")
	default:
		response.Error(c, http.StatusInternalServerError, "Failed to save review")
	}
}
