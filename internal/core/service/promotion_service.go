package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

// PromotionService implements CRUD over promotions. Codes and discounts are
// stored fields; no redemption rules are applied.
type PromotionService struct {
	repo   ports.PromotionRepository
	logger zerolog.Logger
}

func NewPromotionService(repo ports.PromotionRepository, logger zerolog.Logger) *PromotionService {
	return &PromotionService{repo: repo, logger: logger}
}

func (s *PromotionService) Create(ctx context.Context, input ports.CreatePromotionInput) (*domain.Promotion, error) {
	promo := &domain.Promotion{
		Name:               input.Name,
		Description:        input.Description,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		DiscountPercentage: input.DiscountPercentage,
		Code:               input.Code,
	}
	created, err := s.repo.Create(ctx, promo)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("name", created.Name).Msg("promotion created")
	return created, nil
}

func (s *PromotionService) GetByID(ctx context.Context, id uint) (*domain.Promotion, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PromotionService) List(ctx context.Context, skip, limit int) ([]*domain.Promotion, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *PromotionService) Update(ctx context.Context, id uint, changes ports.PromotionChanges) (*domain.Promotion, error) {
	return s.repo.Update(ctx, id, changes)
}

func (s *PromotionService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
