package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/EXP-BookingService/internal/domain"
)

func TestCalculate_NoPromo(t *testing.T) {
	quote := Calculate(100, 3, nil)

	assert.Equal(t, 300.0, quote.Subtotal)
	assert.Equal(t, 0.0, quote.Discount)
	assert.Equal(t, 18.0, quote.Taxes) // 6% от 300
	assert.Equal(t, 318.0, quote.Total)
}

func TestCalculate_PercentagePromo(t *testing.T) {
	rule := &Rule{Type: domain.DiscountPercentage, Value: 10}

	quote := Calculate(1000, 1, rule)

	assert.Equal(t, 1000.0, quote.Subtotal)
	assert.Equal(t, 100.0, quote.Discount)
	assert.Equal(t, 54.0, quote.Taxes) // 6% от 900
	assert.Equal(t, 954.0, quote.Total)
}

func TestCalculate_FlatPromo(t *testing.T) {
	rule := &Rule{Type: domain.DiscountFlat, Value: 100}

	quote := Calculate(500, 2, rule)

	assert.Equal(t, 1000.0, quote.Subtotal)
	assert.Equal(t, 100.0, quote.Discount)
	assert.Equal(t, 54.0, quote.Taxes)
	assert.Equal(t, 954.0, quote.Total)
}

func TestCalculate_FractionalDiscountNotRounded(t *testing.T) {
	// 10% от 999 = 99.9 - скидка не округляется отдельно
	rule := &Rule{Type: domain.DiscountPercentage, Value: 10}

	quote := Calculate(999, 1, rule)

	assert.InDelta(t, 99.9, quote.Discount, 1e-9)
	// База 899.1, налог round(53.946) = 54
	assert.Equal(t, 54.0, quote.Taxes)
	assert.InDelta(t, 953.1, quote.Total, 1e-9)
}

func TestCalculate_TaxRoundsHalfUp(t *testing.T) {
	// 6% от 425 = 25.5 - округляется вверх
	quote := Calculate(425, 1, nil)

	assert.Equal(t, 26.0, quote.Taxes)
	assert.Equal(t, 451.0, quote.Total)
}

func TestCalculate_FlatDiscountClampedToSubtotal(t *testing.T) {
	// Фиксированная скидка больше суммы заказа: база ограничивается нулём,
	// отрицательных налогов не бывает
	rule := &Rule{Type: domain.DiscountFlat, Value: 500}

	quote := Calculate(100, 1, rule)

	assert.Equal(t, 100.0, quote.Subtotal)
	assert.Equal(t, 100.0, quote.Discount)
	assert.Equal(t, 0.0, quote.Taxes)
	assert.Equal(t, 0.0, quote.Total)
}

func TestCalculate_HundredPercent(t *testing.T) {
	rule := &Rule{Type: domain.DiscountPercentage, Value: 100}

	quote := Calculate(750, 2, rule)

	assert.Equal(t, 1500.0, quote.Subtotal)
	assert.Equal(t, 1500.0, quote.Discount)
	assert.Equal(t, 0.0, quote.Taxes)
	assert.Equal(t, 0.0, quote.Total)
}

func TestCalculate_ZeroPrice(t *testing.T) {
	quote := Calculate(0, 5, nil)

	assert.Equal(t, 0.0, quote.Subtotal)
	assert.Equal(t, 0.0, quote.Total)
}

func TestRuleFromPromo(t *testing.T) {
	assert.Nil(t, RuleFromPromo(nil))

	promo := &domain.PromoCode{
		Code:          "SAVE10",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 10,
		IsActive:      true,
	}

	rule := RuleFromPromo(promo)
	assert.Equal(t, domain.DiscountPercentage, rule.Type)
	assert.Equal(t, 10.0, rule.Value)
}
