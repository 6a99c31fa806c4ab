package domain

// Table is a physical table in the restaurant.
type Table struct {
	ID          uint   `json:"id"`
	TableNumber string `json:"table_number"`
	Capacity    int    `json:"capacity"`
	IsAvailable bool   `json:"is_available"`
	Location    string `json:"location,omitempty"`
}
