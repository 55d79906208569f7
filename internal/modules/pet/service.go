package pet

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	pets  PetRepository
	users UserGate
}

func NewService(pets PetRepository, users UserGate) *Service {
	return &Service{pets: pets, users: users}
}

func (s *Service) Create(ctx context.Context, req CreatePetRequest) (*domain.Pet, error) {
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}

	pt, ok := domain.ParsePetType(req.Pet)
	if !ok {
		return nil, ErrInvalidPetType
	}

	profile, err := s.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile != nil && profile.Role != domain.RoleNormalUser {
		return nil, ErrNotNormalUser
	}

	age, err := parseAge(req.Age)
	if err != nil {
		return nil, err
	}

	p := &domain.Pet{
		UserID:        user.ID,
		Name:          req.Name,
		Type:          pt,
		Breed:         req.Breed,
		Age:           age,
		Bio:           req.Bio,
		ImportantInfo: req.ImportantInfo,
		ImageURL:      req.ImageURL,
	}
	if err := s.pets.Create(ctx, p); err != nil {
		return nil, err
	}

	p.User = user
	p.User.Profile = profile
	return p, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Pet, error) {
	pets, err := s.pets.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(pets) > 0 {
		owner, err := s.users.GetByID(ctx, userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		for i := range pets {
			pets[i].User = owner
		}
	}
	return pets, nil
}

func parseAge(v any) (*int, error) {
	if v == nil {
		return nil, nil
	}

	var age int
	switch n := v.(type) {
	case float64:
		age = int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return nil, ErrAgeNotNumeric
		}
		age = int(i)
	case string:
		if n == "" {
			return nil, nil
		}
		i, err := strconv.Atoi(n)
		if err != nil {
			return nil, ErrAgeNotNumeric
		}
		age = i
	default:
		return nil, ErrAgeNotNumeric
	}

	if age < 0 {
		return nil, ErrAgeNegative
	}
	return &age, nil
}
