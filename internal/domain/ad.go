package domain

import "time"

type Ad struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	PunchLine string    `json:"punch_line"`
	URL       string    `json:"url"`
	ImageURL  string    `json:"image_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Ad) TableName() string { return "ads" }
