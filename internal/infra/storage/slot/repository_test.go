package slot

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EXP-BookingService/pkg/dbmetrics"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func slotColumns() []string {
	return []string{"id", "experience_id", "date", "time", "available_seats", "total_seats"}
}

func TestGetForUpdate_InTransactionAddsForUpdate(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT id, experience_id, date, time, available_seats, total_seats FROM slots WHERE id = $1 FOR UPDATE").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(slotColumns()).
			AddRow(10, 1, "2025-10-15", "07:00", 4, 10))

	// Контекст транзакции: внутри него к SELECT добавляется FOR UPDATE
	ctx := dbmetrics.WithTx(context.Background(), repo.db)

	slot, err := repo.GetForUpdate(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(10), slot.ID)
	assert.Equal(t, int64(1), slot.ExperienceID)
	assert.Equal(t, "2025-10-15", slot.Date)
	assert.Equal(t, "07:00", slot.Time)
	assert.Equal(t, 4, slot.AvailableSeats)
	assert.Equal(t, 10, slot.TotalSeats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetForUpdate_OutsideTransactionPlainSelect(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT id, experience_id, date, time, available_seats, total_seats FROM slots WHERE id = $1").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(slotColumns()).
			AddRow(10, 1, "2025-10-15", "07:00", 4, 10))

	_, err := repo.GetForUpdate(context.Background(), 10)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetForUpdate_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT id, experience_id, date, time, available_seats, total_seats FROM slots WHERE id = $1").
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows(slotColumns()))

	_, err := repo.GetForUpdate(context.Background(), 999)

	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestGetForUpdate_LockTimeout(t *testing.T) {
	repo, mock := newMock(t)

	pqErr := &pq.Error{Code: pgLockNotAvailable, Message: "canceling statement due to lock timeout"}
	mock.ExpectQuery("SELECT id, experience_id, date, time, available_seats, total_seats FROM slots WHERE id = $1").
		WithArgs(int64(10)).
		WillReturnError(pqErr)

	_, err := repo.GetForUpdate(context.Background(), 10)

	require.ErrorIs(t, err, ErrLockTimeout)
}

func TestReserve_DecrementsGuarded(t *testing.T) {
	repo, mock := newMock(t)

	// Условие available_seats >= quantity в самом UPDATE
	mock.ExpectExec("UPDATE slots SET available_seats = available_seats - $1 WHERE id = $2 AND available_seats >= $3").
		WithArgs(2, int64(10), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Reserve(context.Background(), 10, 2)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserve_NoRowsMeansInsufficientSeats(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE slots SET available_seats = available_seats - $1 WHERE id = $2 AND available_seats >= $3").
		WithArgs(5, int64(10), 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Reserve(context.Background(), 10, 5)

	require.ErrorIs(t, err, ErrInsufficientSeats)
}

func TestListByExperience_FiltersAndOrders(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT id, experience_id, date, time, available_seats, total_seats FROM slots WHERE experience_id = $1 AND date >= $2 ORDER BY date, time").
		WithArgs(int64(1), "2025-10-15").
		WillReturnRows(sqlmock.NewRows(slotColumns()).
			AddRow(10, 1, "2025-10-15", "07:00", 4, 10).
			AddRow(11, 1, "2025-10-15", "09:00", 0, 10))

	slots, err := repo.ListByExperience(context.Background(), 1, "2025-10-15")

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.True(t, slots[1].IsSoldOut())
	assert.NoError(t, mock.ExpectationsWereMet())
}
