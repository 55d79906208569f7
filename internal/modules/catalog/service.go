package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	services ServiceRepository
	listings SitterServiceRepository
	users    UserGate
	addrs    AddressGate
}

func NewService(services ServiceRepository, listings SitterServiceRepository, users UserGate, addrs AddressGate) *Service {
	return &Service{services: services, listings: listings, users: users, addrs: addrs}
}

func (s *Service) PetChoices() []PetChoice {
	out := make([]PetChoice, 0, len(domain.PetTypes))
	for _, pt := range domain.PetTypes {
		out = append(out, PetChoice{Key: string(pt), Label: pt.Label()})
	}
	return out
}

func (s *Service) ServicesByPet(ctx context.Context, key string) ([]domain.Service, error) {
	pt, ok := domain.ParsePetType(key)
	if !ok {
		return nil, ErrInvalidPetType
	}
	return s.services.ListByPetType(ctx, pt)
}

func (s *Service) AllServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.ListAll(ctx)
}

// CreateSitterService validates all referenced rows before writing anything.
// Unresolvable references are a 400-class failure, not 404: the request
// target loaded fine, the body pointed at rows that do not exist.
func (s *Service) CreateSitterService(ctx context.Context, req CreateSitterServiceRequest) (*domain.SitterService, error) {
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, refErr(err)
	}
	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, refErr(err)
	}
	addr, err := s.addrs.GetByID(ctx, req.AddressID)
	if err != nil {
		return nil, refErr(err)
	}

	if addr.UserID != user.ID {
		return nil, ErrAddressOwnership
	}

	profile, err := s.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile != nil && profile.Role != domain.RolePetsitter {
		return nil, ErrNotPetsitter
	}

	rate, err := parseRate(req.Rate)
	if err != nil || rate <= 0 {
		return nil, ErrInvalidRate
	}

	ss := &domain.SitterService{
		UserID:    user.ID,
		ServiceID: svc.ID,
		AddressID: addr.ID,
		Rate:      rate,
	}
	if err := s.listings.Create(ctx, ss); err != nil {
		return nil, err
	}

	ss.User = user
	ss.User.Profile = profile
	ss.Service = svc
	ss.Address = addr
	return ss, nil
}

func (s *Service) GetSitterService(ctx context.Context, id int64) (*domain.SitterService, error) {
	ss, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.Hydrate(ctx, ss); err != nil {
		return nil, err
	}
	return ss, nil
}

func (s *Service) ListSitterServicesForUser(ctx context.Context, userID int64) ([]domain.SitterService, error) {
	list, err := s.listings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if err := s.Hydrate(ctx, &list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Hydrate fills the nested user/service/address detail of a listing.
func (s *Service) Hydrate(ctx context.Context, ss *domain.SitterService) error {
	user, err := s.users.GetByID(ctx, ss.UserID)
	if err != nil {
		return err
	}
	profile, err := s.users.GetProfile(ctx, ss.UserID)
	if err != nil {
		return err
	}
	user.Profile = profile

	svc, err := s.services.GetByID(ctx, ss.ServiceID)
	if err != nil {
		return err
	}
	addr, err := s.addrs.GetByID(ctx, ss.AddressID)
	if err != nil {
		return err
	}

	ss.User = user
	ss.Service = svc
	ss.Address = addr
	return nil
}

func refErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidReference
	}
	return err
}

func parseRate(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(n, 64)
	default:
		return 0, ErrInvalidRate
	}
}
