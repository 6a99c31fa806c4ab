package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

// TableService implements CRUD over restaurant tables. Availability is a
// stored flag only; no booking-conflict logic lives here.
type TableService struct {
	repo   ports.TableRepository
	logger zerolog.Logger
}

func NewTableService(repo ports.TableRepository, logger zerolog.Logger) *TableService {
	return &TableService{repo: repo, logger: logger}
}

func (s *TableService) Create(ctx context.Context, input ports.CreateTableInput) (*domain.Table, error) {
	table := &domain.Table{
		TableNumber: input.TableNumber,
		Capacity:    input.Capacity,
		IsAvailable: input.IsAvailable,
		Location:    input.Location,
	}
	created, err := s.repo.Create(ctx, table)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("table_number", created.TableNumber).Msg("table created")
	return created, nil
}

func (s *TableService) GetByID(ctx context.Context, id uint) (*domain.Table, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TableService) List(ctx context.Context, skip, limit int) ([]*domain.Table, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *TableService) Update(ctx context.Context, id uint, changes ports.TableChanges) (*domain.Table, error) {
	return s.repo.Update(ctx, id, changes)
}

func (s *TableService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
