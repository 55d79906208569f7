package domain

import "time"

type Address struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zipcode   string    `json:"zipcode"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
