package auth

import (
	"context"
	"time"

	"petsitter/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	GetProfile(ctx context.Context, userID int64) (*domain.Profile, error)
	SaveProfile(ctx context.Context, p *domain.Profile) error
}

type TokenRepository interface {
	Create(ctx context.Context, t *domain.AuthToken) error
	Revoke(ctx context.Context, tokenHash string) error
}

type AddressRepository interface {
	Create(ctx context.Context, a *domain.Address) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Address, error)
}

type jwtService interface {
	GenerateToken(userID int64, role string) (token string, jti string, expiresAt time.Time, err error)
}
