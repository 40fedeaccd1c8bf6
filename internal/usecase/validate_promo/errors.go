package validate_promo

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_promo: invalid input data")

	// ErrPromoNotFound возвращается, когда промокод не найден или неактивен
	// В отличие от создания бронирования, здесь это жесткая ошибка (404)
	ErrPromoNotFound = errors.New("validate_promo: promo code not found or inactive")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_promo: internal error")
)
