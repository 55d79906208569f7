package order

import "petsitter/internal/domain"

type CreateOrderRequest struct {
	NormalUserID    int64 `json:"normal_user_id" binding:"required"`
	PetsitterUserID int64 `json:"petsitter_user_id" binding:"required"`
	ServiceModelID  int64 `json:"service_model_id" binding:"required"`
	PetID           int64 `json:"pet_id" binding:"required"`
	UserAddressID   int64 `json:"user_address_id" binding:"required"`
	// Quantity is accepted as a JSON number or numeric string; omitted
	// defaults to 1.
	Quantity      any    `json:"quantity"`
	StartDatetime string `json:"start_datetime" binding:"required"`
}

type MessageRequest struct {
	Message string `json:"message" binding:"required"`
}

type ReviewRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Review string `json:"review" binding:"required"`
	// Rating is optional; when present it must be an integer in [1,5].
	Rating any `json:"rating"`
}

// OrderEvent is what the websocket stream carries for one order.
type OrderEvent struct {
	Type  string        `json:"type"`
	Order *domain.Order `json:"order"`
}

const (
	EventCreated       = "order_created"
	EventStatusChanged = "status_changed"
	EventMessage       = "message"
	EventReview        = "review"
)
