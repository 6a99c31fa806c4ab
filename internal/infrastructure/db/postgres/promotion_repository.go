package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

// PromotionRepository persists promotion records through GORM.
type PromotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) Create(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	rec := promotionFromDomain(promo)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrPromoCodeTaken
		}
		return nil, fmt.Errorf("create promotion: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *PromotionRepository) FindByID(ctx context.Context, id uint) (*domain.Promotion, error) {
	var rec promotionRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPromotionNotFound
		}
		return nil, fmt.Errorf("find promotion: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *PromotionRepository) List(ctx context.Context, skip, limit int) ([]*domain.Promotion, error) {
	var recs []promotionRecord
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}

	promos := make([]*domain.Promotion, 0, len(recs))
	for i := range recs {
		promos = append(promos, recs[i].toDomain())
	}
	return promos, nil
}

func (r *PromotionRepository) Update(ctx context.Context, id uint, changes ports.PromotionChanges) (*domain.Promotion, error) {
	var rec promotionRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPromotionNotFound
		}
		return nil, fmt.Errorf("load promotion: %w", err)
	}

	updates := map[string]any{}
	if changes.Name != nil {
		updates["name"] = *changes.Name
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	if changes.StartDate != nil {
		updates["start_date"] = *changes.StartDate
	}
	if changes.EndDate != nil {
		updates["end_date"] = *changes.EndDate
	}
	if changes.DiscountPercentage != nil {
		updates["discount_percentage"] = *changes.DiscountPercentage
	}
	if changes.Code != nil {
		if *changes.Code == "" {
			updates["code"] = nil
		} else {
			updates["code"] = *changes.Code
		}
	}
	if len(updates) == 0 {
		return rec.toDomain(), nil
	}

	if err := r.db.WithContext(ctx).Model(&rec).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrPromoCodeTaken
		}
		return nil, fmt.Errorf("update promotion: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *PromotionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&promotionRecord{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete promotion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPromotionNotFound
	}
	return nil
}
