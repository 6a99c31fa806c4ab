package ports

import (
	"context"
	"time"

	"github.com/reservabar/reservation-api/internal/core/domain"
)

// CreatePromotionInput carries the data needed to publish a promotion.
type CreatePromotionInput struct {
	Name               string
	Description        string
	StartDate          time.Time
	EndDate            time.Time
	DiscountPercentage int
	Code               string
}

// PromotionService exposes CRUD over promotions.
type PromotionService interface {
	Create(ctx context.Context, input CreatePromotionInput) (*domain.Promotion, error)
	GetByID(ctx context.Context, id uint) (*domain.Promotion, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Promotion, error)
	Update(ctx context.Context, id uint, changes PromotionChanges) (*domain.Promotion, error)
	Delete(ctx context.Context, id uint) error
}
