package domain

// Business validation constants
const (
	MinBookingQuantity = 1
	MaxBookingQuantity = 100

	MaxFullNameLength = 200
	MaxEmailLength    = 254
)

// TaxRate ставка налога, применяемая к базе после скидки (6%)
const TaxRate = 0.06

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)
