package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusConfirmed единственный статус в системе: бронирование создается
	// сразу подтвержденным, переходов из него нет
	StatusConfirmed BookingStatus = "confirmed"
)

// Booking represents a confirmed experience booking
// Pricing fields are a frozen snapshot computed at creation time and are
// never re-derived from the live Experience/PromoCode state
type Booking struct {
	ID          int64
	ReferenceID string // Публичный номер бронирования (уникальный, не primary key)

	ExperienceID int64
	SlotID       int64

	FullName string
	Email    string
	Quantity int

	// Снапшот ценообразования
	PromoCode *string // Фактически примененный промокод (nil, если не применялся)
	Discount  float64
	Subtotal  float64
	Taxes     float64
	Total     float64

	Status      BookingStatus
	BookingDate time.Time
}
