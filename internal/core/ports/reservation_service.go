package ports

import (
	"context"
	"time"

	"github.com/reservabar/reservation-api/internal/core/domain"
)

// CreateReservationInput carries the data needed to book a table.
// UserID is honoured only for admin callers; clients always book for
// themselves.
type CreateReservationInput struct {
	UserID          uint
	TableID         uint
	ReservationTime time.Time
	NumGuests       int
	SpecialRequests string
}

// ReservationService exposes CRUD over reservations with ownership checks:
// clients may only see and mutate their own bookings, admins see all.
type ReservationService interface {
	Create(ctx context.Context, caller *domain.User, input CreateReservationInput) (*domain.Reservation, error)
	GetByID(ctx context.Context, caller *domain.User, id uint) (*domain.Reservation, error)
	List(ctx context.Context, caller *domain.User, skip, limit int) ([]*domain.Reservation, error)
	Update(ctx context.Context, caller *domain.User, id uint, changes ReservationChanges) (*domain.Reservation, error)
	Delete(ctx context.Context, caller *domain.User, id uint) error
}
