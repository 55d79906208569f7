package ad

import (
	"context"

	"petsitter/internal/domain"
)

type AdRepository interface {
	Create(ctx context.Context, ad *domain.Ad) error
	List(ctx context.Context, activeOnly bool) ([]domain.Ad, error)
}

type Service struct {
	ads AdRepository
}

func NewService(ads AdRepository) *Service {
	return &Service{ads: ads}
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]domain.Ad, error) {
	return s.ads.List(ctx, activeOnly)
}

func (s *Service) Create(ctx context.Context, punchLine, url, imageURL string, isActive bool) (*domain.Ad, error) {
	a := &domain.Ad{
		PunchLine: punchLine,
		URL:       url,
		ImageURL:  imageURL,
		IsActive:  isActive,
	}
	if err := s.ads.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
