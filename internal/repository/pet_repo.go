package repository

import (
	"context"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type PetRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{db: db}
}

type petModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;index"`
	Name          string    `gorm:"column:name"`
	PetType       string    `gorm:"column:pet_type"`
	Breed         string    `gorm:"column:breed"`
	Age           *int      `gorm:"column:age"`
	Bio           string    `gorm:"column:bio"`
	ImportantInfo string    `gorm:"column:important_info"`
	ImageURL      string    `gorm:"column:image_url"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (petModel) TableName() string { return "pets" }

func toDomainPet(m petModel) *domain.Pet {
	return &domain.Pet{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Type:          domain.PetType(m.PetType),
		Breed:         m.Breed,
		Age:           m.Age,
		Bio:           m.Bio,
		ImportantInfo: m.ImportantInfo,
		ImageURL:      m.ImageURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *PetRepository) Create(ctx context.Context, p *domain.Pet) error {
	m := petModel{
		UserID:        p.UserID,
		Name:          p.Name,
		PetType:       string(p.Type),
		Breed:         p.Breed,
		Age:           p.Age,
		Bio:           p.Bio,
		ImportantInfo: p.ImportantInfo,
		ImageURL:      p.ImageURL,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPet(m)
	return nil
}

func (r *PetRepository) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	var m petModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPet(m), nil
}

func (r *PetRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Pet, error) {
	var rows []petModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Pet, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPet(m))
	}
	return out, nil
}
