package pet

import (
	"context"

	"petsitter/internal/domain"
)

type PetRepository interface {
	Create(ctx context.Context, p *domain.Pet) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Pet, error)
}

type UserGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetProfile(ctx context.Context, userID int64) (*domain.Profile, error)
}
