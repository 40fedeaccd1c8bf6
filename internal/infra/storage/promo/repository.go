package promo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EXP-BookingService/internal/domain"
	"github.com/m04kA/EXP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/EXP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с промокодами
// Read-only: счетчиков использования и истечения по дате в системе нет,
// активность промокода - статический флаг is_active
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByCode получает активный промокод по коду
// Код нормализуется к верхнему регистру (поиск регистронезависимый)
// Отсутствующий и неактивный код дают один и тот же результат - ErrPromoNotFound
func (r *Repository) GetActiveByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"discount_type",
		"discount_value",
		"is_active",
		"created_at",
	).
		From("promo_codes").
		Where(squirrel.Eq{"code": strings.ToUpper(code)}).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCode - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.PromoCode
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Code,
		&p.DiscountType,
		&p.DiscountValue,
		&p.IsActive,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCode - scan promo: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time

	return &p, nil
}
