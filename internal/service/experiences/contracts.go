package experiences

import (
	"context"

	"github.com/m04kA/EXP-BookingService/internal/domain"
)

// ExperienceRepository интерфейс репозитория впечатлений
type ExperienceRepository interface {
	List(ctx context.Context, search string) ([]*domain.Experience, error)
	GetByID(ctx context.Context, id int64) (*domain.Experience, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByExperience(ctx context.Context, experienceID int64, fromDate string) ([]*domain.Slot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() string // Текущая дата в формате YYYY-MM-DD
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
