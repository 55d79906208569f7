package catalog

import (
	"context"

	"petsitter/internal/domain"
)

type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListAll(ctx context.Context) ([]domain.Service, error)
	ListByPetType(ctx context.Context, pt domain.PetType) ([]domain.Service, error)
}

type SitterServiceRepository interface {
	Create(ctx context.Context, ss *domain.SitterService) error
	GetByID(ctx context.Context, id int64) (*domain.SitterService, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.SitterService, error)
}

type UserGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetProfile(ctx context.Context, userID int64) (*domain.Profile, error)
}

type AddressGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
}
