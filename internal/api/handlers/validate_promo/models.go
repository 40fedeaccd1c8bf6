package validate_promo

import validatePromo "github.com/m04kA/EXP-BookingService/internal/usecase/validate_promo"

// ValidatePromoRequest HTTP request model
type ValidatePromoRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

// ValidatePromoResponse успешный ответ проверки промокода
type ValidatePromoResponse struct {
	Valid         bool    `json:"valid"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
	Discount      float64 `json:"discount"`
}

// InvalidPromoResponse ответ для неизвестного или неактивного промокода
type InvalidPromoResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidatePromoRequest) ToUseCaseRequest() *validatePromo.Request {
	return &validatePromo.Request{
		Code:     r.Code,
		Subtotal: r.Subtotal,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validatePromo.Response) *ValidatePromoResponse {
	return &ValidatePromoResponse{
		Valid:         true,
		DiscountType:  resp.DiscountType,
		DiscountValue: resp.DiscountValue,
		Discount:      resp.Discount,
	}
}
