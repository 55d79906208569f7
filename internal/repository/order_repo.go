package repository

import (
	"context"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type orderModel struct {
	ID                       int64     `gorm:"column:id;primaryKey"`
	NormalUserID             int64     `gorm:"column:normal_user_id;index"`
	PetsitterUserID          int64     `gorm:"column:petsitter_user_id;index"`
	ServiceModelID           int64     `gorm:"column:service_model_id"`
	PetID                    *int64    `gorm:"column:pet_id"`
	UserAddressID            *int64    `gorm:"column:user_address_id"`
	Quantity                 int       `gorm:"column:quantity"`
	FinalRate                float64   `gorm:"column:final_rate"`
	StartDatetime            time.Time `gorm:"column:start_datetime"`
	Status                   string    `gorm:"column:status"`
	MsgForUser               string    `gorm:"column:msg_for_user"`
	MsgForPetsitter          string    `gorm:"column:msg_for_petsitter"`
	RatingForPetsitter       *int      `gorm:"column:rating_for_petsitter;check:rating_for_petsitter >= 1 AND rating_for_petsitter <= 5"`
	RatingReviewForPetsitter string    `gorm:"column:rating_review_for_petsitter"`
	RatingForUser            *int      `gorm:"column:rating_for_user;check:rating_for_user >= 1 AND rating_for_user <= 5"`
	RatingReviewForUser      string    `gorm:"column:rating_review_for_user"`
	CreatedAt                time.Time `gorm:"column:created_at"`
	UpdatedAt                time.Time `gorm:"column:updated_at"`
}

func (orderModel) TableName() string { return "orders" }

func toDomainOrder(m orderModel) *domain.Order {
	return &domain.Order{
		ID:                       m.ID,
		NormalUserID:             m.NormalUserID,
		PetsitterUserID:          m.PetsitterUserID,
		ServiceModelID:           m.ServiceModelID,
		PetID:                    m.PetID,
		UserAddressID:            m.UserAddressID,
		Quantity:                 m.Quantity,
		FinalRate:                m.FinalRate,
		StartDatetime:            m.StartDatetime,
		Status:                   domain.OrderStatus(m.Status),
		MsgForUser:               m.MsgForUser,
		MsgForPetsitter:          m.MsgForPetsitter,
		RatingForPetsitter:       m.RatingForPetsitter,
		RatingReviewForPetsitter: m.RatingReviewForPetsitter,
		RatingForUser:            m.RatingForUser,
		RatingReviewForUser:      m.RatingReviewForUser,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}

func toOrderModel(o *domain.Order) orderModel {
	return orderModel{
		ID:                       o.ID,
		NormalUserID:             o.NormalUserID,
		PetsitterUserID:          o.PetsitterUserID,
		ServiceModelID:           o.ServiceModelID,
		PetID:                    o.PetID,
		UserAddressID:            o.UserAddressID,
		Quantity:                 o.Quantity,
		FinalRate:                o.FinalRate,
		StartDatetime:            o.StartDatetime,
		Status:                   string(o.Status),
		MsgForUser:               o.MsgForUser,
		MsgForPetsitter:          o.MsgForPetsitter,
		RatingForPetsitter:       o.RatingForPetsitter,
		RatingReviewForPetsitter: o.RatingReviewForPetsitter,
		RatingForUser:            o.RatingForUser,
		RatingReviewForUser:      o.RatingReviewForUser,
		CreatedAt:                o.CreatedAt,
		UpdatedAt:                o.UpdatedAt,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	m := toOrderModel(o)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*o = *toDomainOrder(m)
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var m orderModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainOrder(m), nil
}

// Save persists every mutable field of the order. Callers recompute
// FinalRate before calling; the row never drifts from rate × quantity.
func (r *OrderRepository) Save(ctx context.Context, o *domain.Order) error {
	m := toOrderModel(o)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*o = *toDomainOrder(m)
	return nil
}

// ListForUser returns orders where the user is either party, newest first.
func (r *OrderRepository) ListForUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	var rows []orderModel
	tx := r.db.WithContext(ctx).
		Where("normal_user_id = ? OR petsitter_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Order, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainOrder(m))
	}
	return out, nil
}
