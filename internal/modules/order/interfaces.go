package order

import (
	"context"

	"petsitter/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Save(ctx context.Context, o *domain.Order) error
	ListForUser(ctx context.Context, userID int64) ([]domain.Order, error)
}

type UserGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetProfile(ctx context.Context, userID int64) (*domain.Profile, error)
}

type ListingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.SitterService, error)
}

type ServiceGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type PetGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
}

type AddressGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
}

// EventPublisher fans order changes out to connected websocket clients.
// Best-effort: publish failures never affect the request.
type EventPublisher interface {
	PublishOrderEvent(orderID int64, event OrderEvent)
}
