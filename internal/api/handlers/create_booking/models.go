package create_booking

import (
	"time"

	createBooking "github.com/m04kA/EXP-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ExperienceID int64   `json:"experience_id"`
	SlotID       int64   `json:"slot_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Quantity     int     `json:"quantity"`
	PromoCode    *string `json:"promo_code,omitempty"`
}

// BookingResponse HTTP представление созданного бронирования
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

// CreateBookingResponse обёртка успешного ответа
type CreateBookingResponse struct {
	Success bool            `json:"success"`
	Booking BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ExperienceID: r.ExperienceID,
		SlotID:       r.SlotID,
		FullName:     r.FullName,
		Email:        r.Email,
		Quantity:     r.Quantity,
		PromoCode:    r.PromoCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success: true,
		Booking: BookingResponse{
			ID:           resp.ID,
			ReferenceID:  resp.ReferenceID,
			ExperienceID: resp.ExperienceID,
			SlotID:       resp.SlotID,
			FullName:     resp.FullName,
			Email:        resp.Email,
			Quantity:     resp.Quantity,
			PromoCode:    resp.PromoCode,
			Discount:     resp.Discount,
			Subtotal:     resp.Subtotal,
			Taxes:        resp.Taxes,
			Total:        resp.Total,
			Status:       resp.Status,
			BookingDate:  resp.BookingDate.Format(time.RFC3339),
		},
	}
}
