package ports

import (
	"context"

	"github.com/reservabar/reservation-api/internal/core/domain"
)

// CreateTableInput carries the data needed to register a new table.
type CreateTableInput struct {
	TableNumber string
	Capacity    int
	IsAvailable bool
	Location    string
}

// TableService exposes CRUD over restaurant tables.
type TableService interface {
	Create(ctx context.Context, input CreateTableInput) (*domain.Table, error)
	GetByID(ctx context.Context, id uint) (*domain.Table, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Table, error)
	Update(ctx context.Context, id uint, changes TableChanges) (*domain.Table, error)
	Delete(ctx context.Context, id uint) error
}
