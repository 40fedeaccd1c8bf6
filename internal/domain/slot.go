package domain

// Slot represents a bookable date/time instance of an experience with
// finite seat capacity. AvailableSeats is the single contended counter in
// the system and is only ever mutated under a row-level lock inside the
// booking transaction
type Slot struct {
	ID           int64
	ExperienceID int64
	Date         string // "2025-10-15" - строковый ключ, не парсится как дата
	Time         string // "10:00" - строковый ключ, не парсится как время
	AvailableSeats int
	TotalSeats     int
}

// HasSeats returns true if the slot can accommodate quantity more seats
func (s *Slot) HasSeats(quantity int) bool {
	return s.AvailableSeats >= quantity
}

// IsSoldOut returns true if no seats remain
func (s *Slot) IsSoldOut() bool {
	return s.AvailableSeats <= 0
}
