package repository

import (
	"context"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type AuthTokenRepository struct {
	db *gorm.DB
}

func NewAuthTokenRepository(db *gorm.DB) *AuthTokenRepository {
	return &AuthTokenRepository{db: db}
}

type authTokenModel struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	UserID    int64      `gorm:"column:user_id;index"`
	TokenHash string     `gorm:"column:token_hash;uniqueIndex"`
	JTI       string     `gorm:"column:jti"`
	ExpiresAt time.Time  `gorm:"column:expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (authTokenModel) TableName() string { return "auth_tokens" }

func (r *AuthTokenRepository) Create(ctx context.Context, t *domain.AuthToken) error {
	m := authTokenModel{
		UserID:    t.UserID,
		TokenHash: t.TokenHash,
		JTI:       t.JTI,
		ExpiresAt: t.ExpiresAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	t.ID = m.ID
	t.CreatedAt = m.CreatedAt
	return nil
}

// IsActive reports whether a token with this hash exists, is unrevoked and
// unexpired.
func (r *AuthTokenRepository) IsActive(ctx context.Context, tokenHash string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&authTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", tokenHash, time.Now()).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *AuthTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	now := time.Now()
	tx := r.db.WithContext(ctx).Model(&authTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL", tokenHash).
		Update("revoked_at", &now)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteStale removes expired tokens and tokens revoked before the cutoff.
// Used by cmd/token_cleanup.
func (r *AuthTokenRepository) DeleteStale(ctx context.Context, revokedBefore time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ? OR (revoked_at IS NOT NULL AND revoked_at < ?)", time.Now(), revokedBefore).
		Delete(&authTokenModel{})
	return tx.RowsAffected, tx.Error
}
