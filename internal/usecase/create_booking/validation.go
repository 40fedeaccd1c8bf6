package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/EXP-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Выполняется до открытия транзакции: ошибка здесь не оставляет side effects
func validateRequest(req *Request) error {
	if req.ExperienceID <= 0 {
		return fmt.Errorf("%w: experienceID must be positive", ErrInvalidInput)
	}

	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	if len(req.FullName) > domain.MaxFullNameLength {
		return fmt.Errorf("%w: fullName exceeds %d characters", ErrInvalidInput, domain.MaxFullNameLength)
	}

	// Email проверяется только на присутствие - подтверждения почты в системе нет
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email exceeds %d characters", ErrInvalidInput, domain.MaxEmailLength)
	}

	if req.Quantity < domain.MinBookingQuantity {
		return fmt.Errorf("%w: quantity must be at least %d", ErrInvalidInput, domain.MinBookingQuantity)
	}

	if req.Quantity > domain.MaxBookingQuantity {
		return fmt.Errorf("%w: quantity must not exceed %d", ErrInvalidInput, domain.MaxBookingQuantity)
	}

	return nil
}
