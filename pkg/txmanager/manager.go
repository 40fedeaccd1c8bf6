// Package txmanager менеджер транзакций поверх обёртки dbmetrics.DB
package txmanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/EXP-BookingService/pkg/dbmetrics"
)

// TransactionManager выполняет функции внутри транзакции базы данных
// Транзакция передается вниз по стеку через context (dbmetrics.WithTx),
// репозитории подхватывают её через dbmetrics.GetExecutor
type TransactionManager struct {
	db          *dbmetrics.DB
	lockTimeout time.Duration
}

// NewTransactionManager создает новый менеджер транзакций
// lockTimeout - ограничение ожидания блокировок строк (0 = без ограничения)
func NewTransactionManager(db *dbmetrics.DB, lockTimeout time.Duration) *TransactionManager {
	return &TransactionManager{db: db, lockTimeout: lockTimeout}
}

// Do выполняет fn внутри транзакции с уровнем изоляции Read Committed
// Коммит при nil, полный откат при любой ошибке
// Эксклюзивные блокировки строк (SELECT ... FOR UPDATE) берутся самими репозиториями
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("txmanager: failed to begin transaction: %w", err)
	}

	if err := run(ctx, tx, m.lockTimeout, fn); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: failed to commit transaction: %w", err)
	}

	return nil
}

func run(ctx context.Context, tx dbmetrics.TxExecutor, lockTimeout time.Duration, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	// Ограничиваем ожидание блокировок, чтобы конкурирующие запросы
	// не висели бесконечно (ошибка 55P03 мапится в retryable на уровне репозитория)
	if lockTimeout > 0 {
		setLockTimeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", lockTimeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, setLockTimeout); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("txmanager: failed to set lock_timeout: %w", err)
		}
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	return nil
}
