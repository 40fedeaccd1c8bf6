package slot

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

// Код ошибки PostgreSQL: lock_not_available (истек lock_timeout)
const pgLockNotAvailable = "55P03"

// Repository репозиторий для работы со слотами
// available_seats - единственный разделяемый изменяемый счетчик в системе;
// все изменения идут через Reserve внутри транзакции с блокировкой строки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetForUpdate получает слот по ID с эксклюзивной блокировкой строки (SELECT ... FOR UPDATE)
// Вызывается только внутри транзакции (через контекст txmanager): блокировка
// удерживается до commit/rollback и сериализует конкурирующие бронирования
// одного слота - классическая защита от read-then-write гонки на available_seats
//
// Вне транзакции FOR UPDATE не добавляется и метод превращается в обычное чтение
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"experience_id",
		"date",
		"time",
		"available_seats",
		"total_seats",
	).
		From("slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.ExperienceID,
		&s.Date,
		&s.Time,
		&s.AvailableSeats,
		&s.TotalSeats,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if isLockTimeout(err) {
		return nil, fmt.Errorf("%w: GetForUpdate - slot id=%d: %v", ErrLockTimeout, id, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Reserve уменьшает available_seats слота на quantity
// UPDATE защищен условием available_seats >= quantity: даже если вызывающий
// пропустил проверку под блокировкой, счетчик не может уйти в минус
// (ноль затронутых строк = ErrInsufficientSeats)
func (r *Repository) Reserve(ctx context.Context, id int64, quantity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("available_seats", squirrel.Expr("available_seats - ?", quantity)).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.GtOrEq{"available_seats": quantity}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isLockTimeout(err) {
		return fmt.Errorf("%w: Reserve - slot id=%d: %v", ErrLockTimeout, id, err)
	}
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInsufficientSeats
	}

	return nil
}

// ListByExperience возвращает слоты впечатления начиная с fromDate (включительно),
// упорядоченные по дате и времени
// date хранится строкой YYYY-MM-DD, поэтому лексикографическое сравнение корректно
func (r *Repository) ListByExperience(ctx context.Context, experienceID int64, fromDate string) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"experience_id",
		"date",
		"time",
		"available_seats",
		"total_seats",
	).
		From("slots").
		Where(squirrel.Eq{"experience_id": experienceID}).
		Where(squirrel.GtOrEq{"date": fromDate}).
		OrderBy("date, time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByExperience - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByExperience - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		err := rows.Scan(
			&s.ID,
			&s.ExperienceID,
			&s.Date,
			&s.Time,
			&s.AvailableSeats,
			&s.TotalSeats,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByExperience - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByExperience - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// isLockTimeout проверяет, что ошибка - истечение lock_timeout (55P03)
func isLockTimeout(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgLockNotAvailable
}
