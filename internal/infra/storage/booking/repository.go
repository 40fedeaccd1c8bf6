package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/EXP-BookingService/internal/domain"
	"github.com/m04kA/EXP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/EXP-BookingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL: unique_violation
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет бронирование и возвращает его с заполненными id и booking_date
// Вызывается внутри транзакции бронирования (через контекст txmanager):
// вставка и декремент мест слота коммитятся или откатываются вместе
//
// Нарушение уникального индекса reference_id мапится в ErrReferenceConflict -
// транзакция после этой ошибки прервана, вызывающий повторяет бронирование
// целиком с новым номером
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference_id",
			"experience_id",
			"slot_id",
			"full_name",
			"email",
			"quantity",
			"promo_code",
			"discount",
			"subtotal",
			"taxes",
			"total",
			"status",
		).
		Values(
			b.ReferenceID,
			b.ExperienceID,
			b.SlotID,
			b.FullName,
			b.Email,
			b.Quantity,
			b.PromoCode,
			b.Discount,
			b.Subtotal,
			b.Taxes,
			b.Total,
			b.Status,
		).
		Suffix("RETURNING id, booking_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var bookingDate sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&bookingDate,
	)

	if isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: Create - reference_id=%s: %v", ErrReferenceConflict, b.ReferenceID, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.BookingDate = bookingDate.Time

	return b, nil
}

// GetByReferenceID получает бронирование по публичному номеру
func (r *Repository) GetByReferenceID(ctx context.Context, referenceID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reference_id",
		"experience_id",
		"slot_id",
		"full_name",
		"email",
		"quantity",
		"promo_code",
		"discount",
		"subtotal",
		"taxes",
		"total",
		"status",
		"booking_date",
	).
		From("bookings").
		Where(squirrel.Eq{"reference_id": referenceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReferenceID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var bookingDate sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.ReferenceID,
		&b.ExperienceID,
		&b.SlotID,
		&b.FullName,
		&b.Email,
		&b.Quantity,
		&b.PromoCode,
		&b.Discount,
		&b.Subtotal,
		&b.Taxes,
		&b.Total,
		&b.Status,
		&bookingDate,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReferenceID - scan booking: %v", ErrScanRow, err)
	}

	b.BookingDate = bookingDate.Time

	return &b, nil
}

// isUniqueViolation проверяет, что ошибка - нарушение уникального индекса (23505)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
