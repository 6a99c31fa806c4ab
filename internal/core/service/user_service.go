package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

const defaultListLimit = 100

// UserService implements directory reads and mutations over existing users.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns users ordered by id. Negative skip and non-positive limit
// fall back to 0 and defaultListLimit.
func (s *UserService) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.List(ctx, skip, limit)
}

// Update applies a partial update: only the fields set in changes are
// written, everything else keeps its stored value.
func (s *UserService) Update(ctx context.Context, id uint, changes ports.UserChanges) (*domain.User, error) {
	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Uint("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("user_id", id).Msg("user deleted")
	return nil
}
