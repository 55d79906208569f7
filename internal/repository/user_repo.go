package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type profileModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id;uniqueIndex"`
	Name        string    `gorm:"column:name"`
	Email       string    `gorm:"column:email"`
	Username    string    `gorm:"column:username"`
	Role        string    `gorm:"column:role"`
	PhoneNumber string    `gorm:"column:phone_number"`
	PAN         string    `gorm:"column:pan"`
	Aadhar      string    `gorm:"column:aadhar"`
	Verified    bool      `gorm:"column:verified"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (profileModel) TableName() string { return "profiles" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:           u.ID,
		Username:     u.Username,
		Email:        strings.TrimSpace(strings.ToLower(u.Email)),
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toDomainProfile(m profileModel) *domain.Profile {
	return &domain.Profile{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Email:       m.Email,
		Username:    m.Username,
		Role:        domain.UserRole(m.Role),
		PhoneNumber: m.PhoneNumber,
		PAN:         m.PAN,
		Aadhar:      m.Aadhar,
		Verified:    m.Verified,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toProfileModel(p *domain.Profile) profileModel {
	return profileModel{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Email:       p.Email,
		Username:    p.Username,
		Role:        string(p.Role),
		PhoneNumber: p.PhoneNumber,
		PAN:         p.PAN,
		Aadhar:      p.Aadhar,
		Verified:    p.Verified,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

// GetProfile returns the user's profile, or (nil, nil) when none exists.
// Role checks downstream treat an absent profile as "no constraint".
func (r *UserRepository) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	var m profileModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainProfile(m), nil
}

func (r *UserRepository) SaveProfile(ctx context.Context, p *domain.Profile) error {
	m := toProfileModel(p)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProfile(m)
	return nil
}
