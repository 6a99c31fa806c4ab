package ports

import (
	"context"

	"github.com/reservabar/reservation-api/internal/core/domain"
)

// UserService exposes read/update/delete over the user directory. Creation
// goes through AuthService.Register because it hashes credentials.
type UserService interface {
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
	Update(ctx context.Context, id uint, changes UserChanges) (*domain.User, error)
	Delete(ctx context.Context, id uint) error
}
