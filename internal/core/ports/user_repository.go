package ports

import (
	"context"

	"github.com/reservabar/reservation-api/internal/core/domain"
)

// UserChanges carries a partial update: nil fields keep their stored value.
type UserChanges struct {
	Email     *string
	FirstName *string
	LastName  *string
	Role      *string
	IsActive  *bool
}

// UserRepository defines the persistence contract for user records.
// Lookups return domain.ErrUserNotFound when no record matches; Create and
// Update return domain.ErrEmailTaken when the unique email constraint fires.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
	Update(ctx context.Context, id uint, changes UserChanges) (*domain.User, error)
	Delete(ctx context.Context, id uint) error
}
