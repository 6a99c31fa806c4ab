package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reservabar/reservation-api/internal/core/domain"
	"github.com/reservabar/reservation-api/internal/core/ports"
)

func testPromotion(name, code string) *domain.Promotion {
	now := time.Now().UTC()
	return &domain.Promotion{
		Name:               name,
		Description:        "test offer",
		StartDate:          now,
		EndDate:            now.Add(7 * 24 * time.Hour),
		DiscountPercentage: 10,
		Code:               code,
	}
}

func TestPromotionRepository_CreateAndFind(t *testing.T) {
	repo := NewPromotionRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, testPromotion("Happy Hour", "HAPPY10"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found.Name != "Happy Hour" || found.Code != "HAPPY10" {
		t.Fatalf("unexpected record: %+v", found)
	}
}

func TestPromotionRepository_DuplicateCode(t *testing.T) {
	repo := NewPromotionRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, testPromotion("First", "SAME")); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := repo.Create(ctx, testPromotion("Second", "SAME")); !errors.Is(err, domain.ErrPromoCodeTaken) {
		t.Fatalf("expected ErrPromoCodeTaken, got %v", err)
	}
}

func TestPromotionRepository_EmptyCodesDoNotCollide(t *testing.T) {
	repo := NewPromotionRepository(setupTestDB(t))
	ctx := context.Background()

	// Codeless promotions are stored with NULL codes, which the unique
	// index ignores.
	if _, err := repo.Create(ctx, testPromotion("First", "")); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := repo.Create(ctx, testPromotion("Second", "")); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
}

func TestPromotionRepository_Update_ClearCode(t *testing.T) {
	repo := NewPromotionRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, testPromotion("Happy Hour", "HAPPY10"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	empty := ""
	updated, err := repo.Update(ctx, created.ID, ports.PromotionChanges{Code: &empty})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Code != "" {
		t.Fatalf("expected cleared code, got %q", updated.Code)
	}

	// The code is free again for another promotion.
	if _, err := repo.Create(ctx, testPromotion("Second", "HAPPY10")); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
}

func TestPromotionRepository_NotFound(t *testing.T) {
	repo := NewPromotionRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, 42); !errors.Is(err, domain.ErrPromotionNotFound) {
		t.Fatalf("expected ErrPromotionNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 42); !errors.Is(err, domain.ErrPromotionNotFound) {
		t.Fatalf("expected ErrPromotionNotFound, got %v", err)
	}
}
