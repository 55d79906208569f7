package domain

import "time"

// Service is a catalog entry scoped to one pet type. It defines what is
// offered, not who offers it or at what rate.
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PetType     PetType   `json:"pet"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SitterService is a petsitter's priced offering of a Service at one of
// their addresses.
type SitterService struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	ServiceID int64     `json:"-"`
	AddressID int64     `json:"-"`
	Rate      float64   `json:"rate"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    *User    `json:"user,omitempty"`
	Service *Service `json:"service,omitempty"`
	Address *Address `json:"address,omitempty"`
}
