package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

// ReservationService implements booking CRUD with ownership checks. Clients
// operate only on their own reservations; admins operate on all.
type ReservationService struct {
	reservations ports.ReservationRepository
	tables       ports.TableRepository
	users        ports.UserRepository
	logger       zerolog.Logger
}

func NewReservationService(reservations ports.ReservationRepository, tables ports.TableRepository, users ports.UserRepository, logger zerolog.Logger) *ReservationService {
	return &ReservationService{reservations: reservations, tables: tables, users: users, logger: logger}
}

// Create books a table. A client always books for themselves; only an admin
// may set UserID to another user, and that user must exist. The referenced
// table must exist; no availability or conflict check is performed.
func (s *ReservationService) Create(ctx context.Context, caller *domain.User, input ports.CreateReservationInput) (*domain.Reservation, error) {
	userID := caller.ID
	if caller.IsAdmin() && input.UserID != 0 && input.UserID != caller.ID {
		if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
			return nil, err
		}
		userID = input.UserID
	}

	if _, err := s.tables.FindByID(ctx, input.TableID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	res := &domain.Reservation{
		UserID:          userID,
		TableID:         input.TableID,
		ReservationTime: input.ReservationTime,
		NumGuests:       input.NumGuests,
		Status:          domain.ReservationPending,
		SpecialRequests: input.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := s.reservations.Create(ctx, res)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("reservation_id", created.ID).Uint("user_id", userID).Uint("table_id", created.TableID).Msg("reservation created")
	return created, nil
}

func (s *ReservationService) GetByID(ctx context.Context, caller *domain.User, id uint) (*domain.Reservation, error) {
	res, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && res.UserID != caller.ID {
		return nil, domain.ErrForbidden
	}
	return res, nil
}

// List returns all reservations for admins and only the caller's own for
// clients.
func (s *ReservationService) List(ctx context.Context, caller *domain.User, skip, limit int) ([]*domain.Reservation, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if caller.IsAdmin() {
		return s.reservations.List(ctx, skip, limit)
	}
	return s.reservations.ListByUser(ctx, caller.ID, skip, limit)
}

func (s *ReservationService) Update(ctx context.Context, caller *domain.User, id uint, changes ports.ReservationChanges) (*domain.Reservation, error) {
	if _, err := s.GetByID(ctx, caller, id); err != nil {
		return nil, err
	}
	if changes.TableID != nil {
		if _, err := s.tables.FindByID(ctx, *changes.TableID); err != nil {
			return nil, err
		}
	}
	return s.reservations.Update(ctx, id, changes)
}

func (s *ReservationService) Delete(ctx context.Context, caller *domain.User, id uint) error {
	if _, err := s.GetByID(ctx, caller, id); err != nil {
		return err
	}
	if err := s.reservations.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("reservation_id", id).Msg("reservation deleted")
	return nil
}
