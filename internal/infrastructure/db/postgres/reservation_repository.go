package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

// ReservationRepository persists reservation records through GORM.
type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	rec := reservationFromDomain(res)
	// Associations exist only for the FK constraints; never cascade writes.
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error; err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uint) (*domain.Reservation, error) {
	var rec reservationRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *ReservationRepository) List(ctx context.Context, skip, limit int) ([]*domain.Reservation, error) {
	return r.list(r.db.WithContext(ctx), skip, limit)
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID uint, skip, limit int) ([]*domain.Reservation, error) {
	return r.list(r.db.WithContext(ctx).Where("user_id = ?", userID), skip, limit)
}

func (r *ReservationRepository) list(tx *gorm.DB, skip, limit int) ([]*domain.Reservation, error) {
	var recs []reservationRecord
	err := tx.Order("id ASC").Offset(skip).Limit(limit).Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	out := make([]*domain.Reservation, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].toDomain())
	}
	return out, nil
}

func (r *ReservationRepository) Update(ctx context.Context, id uint, changes ports.ReservationChanges) (*domain.Reservation, error) {
	var rec reservationRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("load reservation: %w", err)
	}

	updates := map[string]any{"updated_at": time.Now().UTC()}
	if changes.TableID != nil {
		updates["table_id"] = *changes.TableID
	}
	if changes.ReservationTime != nil {
		updates["reservation_time"] = *changes.ReservationTime
	}
	if changes.NumGuests != nil {
		updates["num_guests"] = *changes.NumGuests
	}
	if changes.Status != nil {
		updates["status"] = *changes.Status
	}
	if changes.SpecialRequests != nil {
		updates["special_requests"] = *changes.SpecialRequests
	}

	if err := r.db.WithContext(ctx).Model(&rec).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *ReservationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&reservationRecord{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}
