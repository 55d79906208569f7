package repository

import (
	"context"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type SitterServiceRepository struct {
	db *gorm.DB
}

func NewSitterServiceRepository(db *gorm.DB) *SitterServiceRepository {
	return &SitterServiceRepository{db: db}
}

type sitterServiceModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	ServiceID int64     `gorm:"column:service_id;index"`
	AddressID int64     `gorm:"column:address_id"`
	Rate      float64   `gorm:"column:rate"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sitterServiceModel) TableName() string { return "sitter_services" }

func toDomainSitterService(m sitterServiceModel) *domain.SitterService {
	return &domain.SitterService{
		ID:        m.ID,
		UserID:    m.UserID,
		ServiceID: m.ServiceID,
		AddressID: m.AddressID,
		Rate:      m.Rate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *SitterServiceRepository) Create(ctx context.Context, ss *domain.SitterService) error {
	m := sitterServiceModel{
		UserID:    ss.UserID,
		ServiceID: ss.ServiceID,
		AddressID: ss.AddressID,
		Rate:      ss.Rate,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*ss = *toDomainSitterService(m)
	return nil
}

func (r *SitterServiceRepository) GetByID(ctx context.Context, id int64) (*domain.SitterService, error) {
	var m sitterServiceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSitterService(m), nil
}

func (r *SitterServiceRepository) ListByUser(ctx context.Context, userID int64) ([]domain.SitterService, error) {
	var rows []sitterServiceModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.SitterService, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSitterService(m))
	}
	return out, nil
}
