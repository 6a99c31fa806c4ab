package domain

import "time"

// Promotion is a time-bounded discount offer. Pure record, no redemption logic.
type Promotion struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	DiscountPercentage int       `json:"discount_percentage,omitempty"`
	Code               string    `json:"code,omitempty"`
}
