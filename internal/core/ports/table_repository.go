package ports

import (
	"context"

	"github.com/reservabar/reservation-api/internal/core/domain"
)

// TableChanges carries a partial table update.
type TableChanges struct {
	TableNumber *string
	Capacity    *int
	IsAvailable *bool
	Location    *string
}

// TableRepository defines the persistence contract for restaurant tables.
type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) (*domain.Table, error)
	FindByID(ctx context.Context, id uint) (*domain.Table, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Table, error)
	Update(ctx context.Context, id uint, changes TableChanges) (*domain.Table, error)
	Delete(ctx context.Context, id uint) error
}
