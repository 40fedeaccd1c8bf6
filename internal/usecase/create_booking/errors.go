package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// Транзакция при этом не открывается
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotMismatch возвращается, когда слот не принадлежит указанному впечатлению
	ErrSlotMismatch = errors.New("create_booking: slot does not belong to experience")

	// ErrInsufficientSeats возвращается, когда свободных мест меньше запрошенного
	ErrInsufficientSeats = errors.New("create_booking: not enough seats available")

	// ErrSlotBusy возвращается, когда истекло ожидание блокировки слота
	// Ошибка retryable: клиент может повторить запрос
	ErrSlotBusy = errors.New("create_booking: slot is locked by another booking, retry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
