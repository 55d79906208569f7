package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderCompleted OrderStatus = "completed"
	// OrderCancelled has no endpoint that reaches it yet; the state is kept
	// so stored rows and future cancellation flows stay representable.
	OrderCancelled OrderStatus = "cancelled"
)

// DefaultOrderMessage is the placeholder both message channels start with.
const DefaultOrderMessage = "waiting"

// Order is a booking transaction between a normal user (the customer) and a
// petsitter for one SitterService listing. FinalRate is always derived from
// the listing's current rate times Quantity and is recomputed on every save;
// it is never accepted from a client.
type Order struct {
	ID              int64       `json:"id"`
	NormalUserID    int64       `json:"-"`
	PetsitterUserID int64       `json:"-"`
	ServiceModelID  int64       `json:"-"`
	PetID           *int64      `json:"-"`
	UserAddressID   *int64      `json:"-"`
	Quantity        int         `json:"quantity"`
	FinalRate       float64     `json:"final_rate"`
	StartDatetime   time.Time   `json:"start_datetime"`
	Status          OrderStatus `json:"status"`

	// Two one-way message channels, last write wins.
	MsgForUser      string `json:"msg_for_user"`
	MsgForPetsitter string `json:"msg_for_petsitter"`

	// Each party reviews the other. Replacement semantics, no history.
	RatingForPetsitter       *int   `json:"rating_for_petsitter"`
	RatingReviewForPetsitter string `json:"rating_review_for_petsitter"`
	RatingForUser            *int   `json:"rating_for_user"`
	RatingReviewForUser      string `json:"rating_review_for_user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	NormalUser    *User          `json:"normal_user,omitempty"`
	PetsitterUser *User          `json:"petsitter_user,omitempty"`
	ServiceModel  *SitterService `json:"service_model,omitempty"`
	Pet           *Pet           `json:"pet,omitempty"`
	UserAddress   *Address       `json:"user_address,omitempty"`
}
