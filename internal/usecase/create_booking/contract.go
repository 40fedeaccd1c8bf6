package create_booking

import (
	"context"

	"github.com/m04kA/EXP-BookingService/internal/domain"
	"github.com/m04kA/EXP-BookingService/pkg/refgen"
)

// SlotRepository интерфейс репозитория слотов
// GetForUpdate обязан брать эксклюзивную блокировку строки на время транзакции
type SlotRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Slot, error)
	Reserve(ctx context.Context, id int64, quantity int) error
}

// ExperienceRepository интерфейс репозитория впечатлений
type ExperienceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Experience, error)
}

// PromoRepository интерфейс репозитория промокодов
type PromoRepository interface {
	GetActiveByCode(ctx context.Context, code string) (*domain.PromoCode, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReferenceGenerator интерфейс генерации публичных номеров бронирований (для тестирования)
type ReferenceGenerator interface {
	Generate() string
}

// Metrics интерфейс бизнес-метрик бронирований
type Metrics interface {
	IncBookingCreated()
	IncBookingFailed(reason string)
	AddSeatsReserved(quantity int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RandomReferenceGenerator генератор номеров для production (pkg/refgen)
type RandomReferenceGenerator struct{}

// Generate возвращает новый случайный номер бронирования
func (g *RandomReferenceGenerator) Generate() string {
	return refgen.Generate()
}

// NopMetrics заглушка метрик, используется когда метрики выключены
type NopMetrics struct{}

func (NopMetrics) IncBookingCreated()            {}
func (NopMetrics) IncBookingFailed(string)       {}
func (NopMetrics) AddSeatsReserved(int)          {}
