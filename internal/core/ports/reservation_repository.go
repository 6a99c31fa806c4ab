package ports

import (
	"context"
	"time"

	"github.com/reservabar/reservation-api/internal/core/domain"
)

// ReservationChanges carries a partial reservation update.
type ReservationChanges struct {
	TableID         *uint
	ReservationTime *time.Time
	NumGuests       *int
	Status          *string
	SpecialRequests *string
}

// ReservationRepository defines the persistence contract for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	FindByID(ctx context.Context, id uint) (*domain.Reservation, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Reservation, error)
	ListByUser(ctx context.Context, userID uint, skip, limit int) ([]*domain.Reservation, error)
	Update(ctx context.Context, id uint, changes ReservationChanges) (*domain.Reservation, error)
	Delete(ctx context.Context, id uint) error
}
