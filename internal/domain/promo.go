package domain

import "time"

// DiscountType represents the kind of discount a promo code grants
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

// PromoCode represents a discount rule looked up by its code
// Lookup is case-insensitive (codes are stored and matched upper-cased);
// inactive codes behave exactly like missing ones
type PromoCode struct {
	ID            int64
	Code          string
	DiscountType  DiscountType
	DiscountValue float64 // Процент 0-100 или фиксированная сумма
	IsActive      bool
	CreatedAt     time.Time
}
