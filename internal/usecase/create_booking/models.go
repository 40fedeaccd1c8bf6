package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ExperienceID int64
	SlotID       int64
	FullName     string
	Email        string
	Quantity     int
	PromoCode    *string // Опциональный промокод
}

// Response модель ответа с созданным бронированием
// Ценовые поля - замороженный снапшот, рассчитанный в момент бронирования
type Response struct {
	ID          int64
	ReferenceID string

	ExperienceID int64
	SlotID       int64

	FullName string
	Email    string
	Quantity int

	PromoCode *string // Фактически примененный промокод (nil, если скидки не было)
	Discount  float64
	Subtotal  float64
	Taxes     float64
	Total     float64

	Status      string
	BookingDate time.Time
}
