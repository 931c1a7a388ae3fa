// Package simpletxmanager менеджер транзакций поверх голого *sql.DB
// Используется, когда метрики выключены; семантика повторов и таймаутов
// совпадает с pkg/txmanager
package simpletxmanager

import (
	"context"
	"database/sql"
	"time"

	"github.com/coachpoint/CP-BookingService/pkg/dbmetrics"
	"github.com/coachpoint/CP-BookingService/pkg/txmanager"
)

// sqlDBBeginner адаптирует *sql.DB под txmanager.TxBeginner
type sqlDBBeginner struct {
	db *sql.DB
}

func (b *sqlDBBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx, err := b.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &dbmetrics.SqlTxWrapper{Tx: tx}, nil
}

// TransactionManager менеджер транзакций без метрик
type TransactionManager struct {
	inner *txmanager.TransactionManager
}

// NewTransactionManager создает менеджер транзакций над *sql.DB
func NewTransactionManager(db *sql.DB, opts ...txmanager.Option) *TransactionManager {
	return &TransactionManager{
		inner: txmanager.NewTransactionManager(&sqlDBBeginner{db: db}, opts...),
	}
}

// WithTimeout прокидывает настройку бюджета времени
func WithTimeout(d time.Duration) txmanager.Option {
	return txmanager.WithTimeout(d)
}

// Do выполняет fn в обычной транзакции
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.Do(ctx, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.DoReadOnly(ctx, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции с одним повтором
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.DoSerializable(ctx, fn)
}
