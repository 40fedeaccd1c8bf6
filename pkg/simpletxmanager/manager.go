// Package simpletxmanager менеджер транзакций поверх обычного *sql.DB (без метрик)
package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/EXP-BookingService/pkg/dbmetrics"
)

// TransactionManager выполняет функции внутри транзакции базы данных
// Используется, когда метрики отключены; контракт совпадает с txmanager.TransactionManager
type TransactionManager struct {
	db          *sql.DB
	lockTimeout time.Duration
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db *sql.DB, lockTimeout time.Duration) *TransactionManager {
	return &TransactionManager{db: db, lockTimeout: lockTimeout}
}

// Do выполняет fn внутри транзакции с уровнем изоляции Read Committed
// Коммит при nil, полный откат при любой ошибке
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("simpletxmanager: failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if m.lockTimeout > 0 {
		setLockTimeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockTimeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, setLockTimeout); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("simpletxmanager: failed to set lock_timeout: %w", err)
		}
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("simpletxmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: failed to commit transaction: %w", err)
	}

	return nil
}
