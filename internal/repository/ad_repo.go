package repository

import (
	"context"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type AdRepository struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) *AdRepository {
	return &AdRepository{db: db}
}

func (r *AdRepository) Create(ctx context.Context, ad *domain.Ad) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

func (r *AdRepository) List(ctx context.Context, activeOnly bool) ([]domain.Ad, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var ads []domain.Ad
	if err := q.Find(&ads).Error; err != nil {
		return nil, err
	}
	return ads, nil
}
