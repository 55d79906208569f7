package repository

import (
	"context"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

type addressModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	Address   string    `gorm:"column:address"`
	City      string    `gorm:"column:city"`
	State     string    `gorm:"column:state"`
	Zipcode   string    `gorm:"column:zipcode"`
	Latitude  *float64  `gorm:"column:latitude"`
	Longitude *float64  `gorm:"column:longitude"`
	Country   string    `gorm:"column:country"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (addressModel) TableName() string { return "addresses" }

func toDomainAddress(m addressModel) *domain.Address {
	return &domain.Address{
		ID:        m.ID,
		UserID:    m.UserID,
		Address:   m.Address,
		City:      m.City,
		State:     m.State,
		Zipcode:   m.Zipcode,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Country:   m.Country,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toAddressModel(a *domain.Address) addressModel {
	return addressModel{
		ID:        a.ID,
		UserID:    a.UserID,
		Address:   a.Address,
		City:      a.City,
		State:     a.State,
		Zipcode:   a.Zipcode,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		Country:   a.Country,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (r *AddressRepository) Create(ctx context.Context, a *domain.Address) error {
	m := toAddressModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAddress(m)
	return nil
}

func (r *AddressRepository) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	var m addressModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAddress(m), nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Address, error) {
	var rows []addressModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Address, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainAddress(m))
	}
	return out, nil
}
