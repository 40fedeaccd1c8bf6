// Package pricing чистый расчет стоимости бронирования
// Никакого I/O: детерминированная функция от цены, количества и правила скидки
package pricing

import (
	"math"

	"github.com/m04kA/EXP-BookingService/internal/domain"
)

// Rule правило скидки, извлеченное из промокода
type Rule struct {
	Type  domain.DiscountType
	Value float64 // Процент 0-100 для percentage, сумма для flat
}

// RuleFromPromo конвертирует промокод в правило скидки
func RuleFromPromo(promo *domain.PromoCode) *Rule {
	if promo == nil {
		return nil
	}
	return &Rule{
		Type:  promo.DiscountType,
		Value: promo.DiscountValue,
	}
}

// Quote результат расчета стоимости
// Значения замораживаются в бронировании и никогда не пересчитываются
type Quote struct {
	Subtotal float64
	Discount float64
	Taxes    float64
	Total    float64
}

// Calculate рассчитывает стоимость бронирования:
//
//	subtotal = unitPrice * quantity
//	discount = subtotal * value / 100 (percentage) или value (flat), без отдельного округления
//	taxes    = round(taxedBase * 6%), округление half-up до целой денежной единицы
//	total    = taxedBase + taxes
//
// Скидка ограничивается subtotal: налоговая база не может уйти в минус,
// даже если фиксированная скидка больше суммы заказа
func Calculate(unitPrice float64, quantity int, rule *Rule) Quote {
	subtotal := unitPrice * float64(quantity)

	discount := 0.0
	if rule != nil {
		switch rule.Type {
		case domain.DiscountPercentage:
			discount = subtotal * rule.Value / 100
		case domain.DiscountFlat:
			discount = rule.Value
		}
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}

	taxedBase := subtotal - discount
	taxes := math.Round(taxedBase * domain.TaxRate)

	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Taxes:    taxes,
		Total:    taxedBase + taxes,
	}
}
