package ports

import (
	"context"

	"github.com/reservabar/reservation-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// AuthService handles registration, credential authentication, and bearer
// token resolution.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ResolveBearer(ctx context.Context, token string) (*domain.User, error)
}
