package domain

import "time"

// Experience represents a bookable activity in the catalog
// Read-only from the booking flow's perspective; rows are seeded out of band
type Experience struct {
	ID          int64
	Title       string
	Description string
	Location    string
	Price       float64 // Цена за одно место, целые рупии
	ImageURL    string
	About       string
	CreatedAt   time.Time
}
