package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

// AuthService implements registration, credential authentication, and bearer
// token resolution. It holds no state of its own beyond the injected
// collaborators.
type AuthService struct {
	users  ports.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher *PasswordHasher, tokens *TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a new account. The role defaults to client when empty;
// unknown roles are rejected. The store enforces email uniqueness.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleClient
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login authenticates credentials and issues an access token. Unknown email
// and wrong password both surface as ErrInvalidCredentials so account
// existence is not leaked. The is_active flag is deliberately not checked
// here; an inactive user can obtain a token but every bearer resolution of
// it fails.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", user.Email).Msg("login succeeded")
	return token, user, nil
}

// ResolveBearer validates a token and resolves its subject to an active user.
// The directory lookup happens on every call: deactivating a user takes
// effect on their very next request even while the token is still
// cryptographically valid.
func (s *AuthService) ResolveBearer(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	return user, nil
}
