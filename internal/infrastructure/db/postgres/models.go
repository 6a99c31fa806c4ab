package postgres

import (
	"time"

	"github.com/reservabar/reservation-api/internal/core/domain"
)

// Persistence records are kept separate from domain types so the schema can
// carry GORM tags without leaking them into the core.

type userRecord struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string
	LastName     string
	Role         string `gorm:"not null;default:client"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Role:         r.Role,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func userFromDomain(u *domain.User) *userRecord {
	return &userRecord{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type tableRecord struct {
	ID          uint   `gorm:"primarykey"`
	TableNumber string `gorm:"uniqueIndex;not null"`
	Capacity    int    `gorm:"not null"`
	IsAvailable bool   `gorm:"not null;default:true"`
	Location    string
}

func (tableRecord) TableName() string { return "tables" }

func (r *tableRecord) toDomain() *domain.Table {
	return &domain.Table{
		ID:          r.ID,
		TableNumber: r.TableNumber,
		Capacity:    r.Capacity,
		IsAvailable: r.IsAvailable,
		Location:    r.Location,
	}
}

func tableFromDomain(t *domain.Table) *tableRecord {
	return &tableRecord{
		ID:          t.ID,
		TableNumber: t.TableNumber,
		Capacity:    t.Capacity,
		IsAvailable: t.IsAvailable,
		Location:    t.Location,
	}
}

type reservationRecord struct {
	ID              uint        `gorm:"primarykey"`
	UserID          uint        `gorm:"not null;index"`
	User            userRecord  `gorm:"foreignKey:UserID"`
	TableID         uint        `gorm:"not null;index"`
	Table           tableRecord `gorm:"foreignKey:TableID"`
	ReservationTime time.Time   `gorm:"not null"`
	NumGuests       int         `gorm:"not null"`
	Status          string      `gorm:"not null;default:pending"`
	SpecialRequests string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (reservationRecord) TableName() string { return "reservations" }

func (r *reservationRecord) toDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:              r.ID,
		UserID:          r.UserID,
		TableID:         r.TableID,
		ReservationTime: r.ReservationTime,
		NumGuests:       r.NumGuests,
		Status:          r.Status,
		SpecialRequests: r.SpecialRequests,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func reservationFromDomain(res *domain.Reservation) *reservationRecord {
	return &reservationRecord{
		ID:              res.ID,
		UserID:          res.UserID,
		TableID:         res.TableID,
		ReservationTime: res.ReservationTime,
		NumGuests:       res.NumGuests,
		Status:          res.Status,
		SpecialRequests: res.SpecialRequests,
		CreatedAt:       res.CreatedAt,
		UpdatedAt:       res.UpdatedAt,
	}
}

type promotionRecord struct {
	ID                 uint   `gorm:"primarykey"`
	Name               string `gorm:"not null"`
	Description        string
	StartDate          time.Time `gorm:"not null"`
	EndDate            time.Time `gorm:"not null"`
	DiscountPercentage int
	Code               *string `gorm:"uniqueIndex"`
}

func (promotionRecord) TableName() string { return "promotions" }

func (r *promotionRecord) toDomain() *domain.Promotion {
	code := ""
	if r.Code != nil {
		code = *r.Code
	}
	return &domain.Promotion{
		ID:                 r.ID,
		Name:               r.Name,
		Description:        r.Description,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		DiscountPercentage: r.DiscountPercentage,
		Code:               code,
	}
}

func promotionFromDomain(p *domain.Promotion) *promotionRecord {
	rec := &promotionRecord{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		DiscountPercentage: p.DiscountPercentage,
	}
	// Empty codes stay NULL so the unique index ignores them.
	if p.Code != "" {
		code := p.Code
		rec.Code = &code
	}
	return rec
}
