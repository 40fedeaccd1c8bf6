package validate_promo

// Request модель запроса на проверку промокода
type Request struct {
	Code     string
	Subtotal float64 // Сумма заказа, к которой будет применена скидка
}

// Response модель ответа с деталями скидки
type Response struct {
	Code          string
	DiscountType  string
	DiscountValue float64
	Discount      float64 // Рассчитанная скидка для переданного subtotal
}
