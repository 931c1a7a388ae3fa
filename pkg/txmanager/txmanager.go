// Package txmanager менеджер транзакций поверх dbmetrics.DB
// Гарантирует ограниченное время жизни транзакции и один внутренний
// повтор при serialization failure
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/coachpoint/CP-BookingService/pkg/dbmetrics"
)

var (
	// ErrBeginTx возвращается при ошибке открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrTxTimeout возвращается, когда транзакция не уложилась в отведённый бюджет времени
	ErrTxTimeout = errors.New("txmanager: transaction timed out")

	// ErrSerialization возвращается, когда сериализуемая транзакция не прошла
	// даже после повтора (конкурентный доступ к одним и тем же строкам)
	ErrSerialization = errors.New("txmanager: serialization failure")
)

// Коды ошибок PostgreSQL, при которых транзакцию безопасно повторить
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// TxBeginner интерфейс для начала транзакций (реализуется dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager управляет жизненным циклом транзакций
type TransactionManager struct {
	db           TxBeginner
	timeout      time.Duration
	retryBackoff time.Duration
}

// Option настройка менеджера
type Option func(*TransactionManager)

// WithTimeout задаёт бюджет времени на одну попытку транзакции
func WithTimeout(d time.Duration) Option {
	return func(m *TransactionManager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithRetryBackoff задаёт паузу перед повтором сериализуемой транзакции
func WithRetryBackoff(d time.Duration) Option {
	return func(m *TransactionManager) {
		if d > 0 {
			m.retryBackoff = d
		}
	}
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner, opts ...Option) *TransactionManager {
	m := &TransactionManager{
		db:           db,
		timeout:      5 * time.Second,
		retryBackoff: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do выполняет fn в обычной транзакции
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции
// При serialization failure или deadlock повторяет ровно один раз с паузой:
// из двух конкурирующих транзакций БД гарантированно пропускает только одну
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	err := m.run(ctx, opts, fn)
	if err == nil || !IsRetryable(err) {
		return err
	}

	// Один повтор: если и он не прошёл, наружу уходит retryable-ошибка,
	// которую вызывающая сторона трактует как транзиентный сбой
	select {
	case <-time.After(m.retryBackoff):
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrTxTimeout, ctx.Err())
	}

	if err = m.run(ctx, opts, fn); err != nil && isSerializationFailure(err) {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return err
}

// run выполняет одну попытку транзакции с бюджетом времени
func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	txCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	tx, err := m.db.BeginTx(txCtx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	if err := fn(dbmetrics.WithTx(txCtx, tx)); err != nil {
		_ = tx.Rollback()
		if errors.Is(txCtx.Err(), context.DeadlineExceeded) && !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrTxTimeout, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if isSerializationFailure(err) {
			return err
		}
		if errors.Is(txCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrTxTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}

// IsRetryable сообщает, имеет ли смысл повторить транзакцию
func IsRetryable(err error) bool {
	return isSerializationFailure(err) || errors.Is(err, ErrTxTimeout)
}

// isSerializationFailure проверяет коды ошибок PostgreSQL 40001/40P01
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return code == pgSerializationFailure || code == pgDeadlockDetected
	}
	return false
}
