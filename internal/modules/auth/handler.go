package auth

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/register/", h.Register)
	rg.POST("/login-email/", h.Login)
	rg.GET("/users/:id/addresses/", h.ListAddresses)
	rg.POST("/users/:id/addresses/", h.CreateAddress)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/logout/", h.Logout)
	rg.PUT("/users/me/", h.UpdateMe)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, p, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPasswordMismatch):
			response.Error(c, http.StatusBadRequest, "Passwords Must Match")
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusBadRequest, "Email Already Exists")
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "Role must be petsitter or normalUser")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to register")
		}
		return
	}

	response.JSON(c, http.StatusCreated, newAuthResponse(token, u, p))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide both email and password")
		return
	}

	u, p, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	response.JSON(c, http.StatusOK, newAuthResponse(token, u, p))
}

func (h *Handler) Logout(c *gin.Context) {
	rawToken := c.GetString("token")
	if err := h.service.Logout(c.Request.Context(), rawToken); err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to log out")
		return
	}
	response.Message(c, http.StatusOK, "Successfully logged out.")
}

func (h *Handler) UpdateMe(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, p, err := h.service.UpdateMe(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusBadRequest, "Email Already Exists")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	u.Profile = p
	response.JSON(c, http.StatusOK, u)
}

func (h *Handler) ListAddresses(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	addrs, err := h.service.ListAddresses(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list addresses")
		return
	}
	response.JSON(c, http.StatusOK, addrs)
}

func (h *Handler) CreateAddress(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.service.CreateAddress(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidReference) {
			response.Error(c, http.StatusBadRequest, "Invalid user_id")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create address")
		return
	}
	response.JSON(c, http.StatusCreated, a)
}
