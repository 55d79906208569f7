package repository

import (
	"context"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	PetType     string    `gorm:"column:pet_type;index"`
	Description string    `gorm:"column:description"`
	ImageURL    string    `gorm:"column:image_url"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.Service {
	return &domain.Service{
		ID:          m.ID,
		Name:        m.Name,
		PetType:     domain.PetType(m.PetType),
		Description: m.Description,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := serviceModel{
		Name:        s.Name,
		PetType:     string(s.PetType),
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) ListAll(ctx context.Context) ([]domain.Service, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *ServiceRepository) ListByPetType(ctx context.Context, pt domain.PetType) ([]domain.Service, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("pet_type = ?", string(pt)))
}

func (r *ServiceRepository) list(_ context.Context, tx *gorm.DB) ([]domain.Service, error) {
	var rows []serviceModel
	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}
