package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

// TableRepository persists restaurant table records through GORM.
type TableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

func (r *TableRepository) Create(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	rec := tableFromDomain(table)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrTableNumberTaken
		}
		return nil, fmt.Errorf("create table: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *TableRepository) FindByID(ctx context.Context, id uint) (*domain.Table, error) {
	var rec tableRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("find table: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *TableRepository) List(ctx context.Context, skip, limit int) ([]*domain.Table, error) {
	var recs []tableRecord
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	tables := make([]*domain.Table, 0, len(recs))
	for i := range recs {
		tables = append(tables, recs[i].toDomain())
	}
	return tables, nil
}

func (r *TableRepository) Update(ctx context.Context, id uint, changes ports.TableChanges) (*domain.Table, error) {
	var rec tableRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("load table: %w", err)
	}

	updates := map[string]any{}
	if changes.TableNumber != nil {
		updates["table_number"] = *changes.TableNumber
	}
	if changes.Capacity != nil {
		updates["capacity"] = *changes.Capacity
	}
	if changes.IsAvailable != nil {
		updates["is_available"] = *changes.IsAvailable
	}
	if changes.Location != nil {
		updates["location"] = *changes.Location
	}
	if len(updates) == 0 {
		return rec.toDomain(), nil
	}

	if err := r.db.WithContext(ctx).Model(&rec).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrTableNumberTaken
		}
		return nil, fmt.Errorf("update table: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *TableRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&tableRecord{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete table: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTableNotFound
	}
	return nil
}
