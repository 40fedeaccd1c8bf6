package promo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EXP-BookingService/internal/domain"
)

const selectQuery = "SELECT id, code, discount_type, discount_value, is_active, created_at FROM promo_codes WHERE code = $1 AND is_active = $2"

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestGetActiveByCode_UpperCasesCode(t *testing.T) {
	repo, mock := newMock(t)

	// Поиск регистронезависимый: код нормализуется к верхнему регистру
	mock.ExpectQuery(selectQuery).
		WithArgs("SAVE10", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "discount_type", "discount_value", "is_active", "created_at"}).
			AddRow(1, "SAVE10", "percentage", 10.0, true, time.Now()))

	p, err := repo.GetActiveByCode(context.Background(), "save10")

	require.NoError(t, err)
	assert.Equal(t, "SAVE10", p.Code)
	assert.Equal(t, domain.DiscountPercentage, p.DiscountType)
	assert.Equal(t, 10.0, p.DiscountValue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByCode_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(selectQuery).
		WithArgs("NOSUCH", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetActiveByCode(context.Background(), "NOSUCH")

	require.ErrorIs(t, err, ErrPromoNotFound)
}

func TestGetActiveByCode_InactiveLooksLikeMissing(t *testing.T) {
	repo, mock := newMock(t)

	// is_active = true в самом запросе: неактивный код дает пустой результат
	mock.ExpectQuery(selectQuery).
		WithArgs("OLD", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetActiveByCode(context.Background(), "OLD")

	require.ErrorIs(t, err, ErrPromoNotFound)
}
