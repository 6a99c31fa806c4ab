package ports

import (
	"context"
	"time"

	"github.com/reservabar/reservation-api/internal/core/domain"
)

// PromotionChanges carries a partial promotion update.
type PromotionChanges struct {
	Name               *string
	Description        *string
	StartDate          *time.Time
	EndDate            *time.Time
	DiscountPercentage *int
	Code               *string
}

// PromotionRepository defines the persistence contract for promotions.
type PromotionRepository interface {
	Create(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error)
	FindByID(ctx context.Context, id uint) (*domain.Promotion, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Promotion, error)
	Update(ctx context.Context, id uint, changes PromotionChanges) (*domain.Promotion, error)
	Delete(ctx context.Context, id uint) error
}
