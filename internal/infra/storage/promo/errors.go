package promo

import "errors"

var (
	// ErrPromoNotFound возвращается, когда промокод не найден или неактивен
	// Оба случая неразличимы снаружи: "invalid or expired"
	ErrPromoNotFound = errors.New("promo.repository: promo code not found or inactive")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("promo.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("promo.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("promo.repository: failed to scan row")
)
