package domain

import "time"

// Reservation statuses. No transition rules are enforced beyond storage.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation links a user to a table at a point in time.
type Reservation struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	TableID         uint      `json:"table_id"`
	ReservationTime time.Time `json:"reservation_time"`
	NumGuests       int       `json:"num_guests"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
