package models

import (
	"time"

	"github.com/m04kA/EXP-BookingService/internal/domain"
)

// BookingResponse HTTP представление бронирования
type BookingResponse struct {
	ID           int64   `json:"id"`
	ReferenceID  string  `json:"reference_id"`
	ExperienceID int64   `json:"experience_id"`
	SlotID       int64   `json:"slot_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Quantity     int     `json:"quantity"`
	PromoCode    *string `json:"promo_code,omitempty"`
	Discount     float64 `json:"discount"`
	Subtotal     float64 `json:"subtotal"`
	Taxes        float64 `json:"taxes"`
	Total        float64 `json:"total"`
	Status       string  `json:"status"`
	BookingDate  string  `json:"booking_date"`
}

// FromDomainBooking конвертирует доменную модель бронирования в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		ReferenceID:  b.ReferenceID,
		ExperienceID: b.ExperienceID,
		SlotID:       b.SlotID,
		FullName:     b.FullName,
		Email:        b.Email,
		Quantity:     b.Quantity,
		PromoCode:    b.PromoCode,
		Discount:     b.Discount,
		Subtotal:     b.Subtotal,
		Taxes:        b.Taxes,
		Total:        b.Total,
		Status:       string(b.Status),
		BookingDate:  b.BookingDate.Format(time.RFC3339),
	}
}
