package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrInsufficientSeats возвращается, когда свободных мест меньше запрошенного
	ErrInsufficientSeats = errors.New("slot.repository: insufficient seats")

	// ErrLockTimeout возвращается, когда истекло ожидание блокировки строки слота
	// Ошибка retryable: параллельная транзакция держала блокировку дольше lock_timeout
	ErrLockTimeout = errors.New("slot.repository: row lock wait timed out")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
