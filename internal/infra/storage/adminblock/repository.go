package adminblock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	"github.com/coachpoint/CP-BookingService/pkg/dbmetrics"
	"github.com/coachpoint/CP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий административных блокировок слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает блокировку слота, если её еще нет
// Возвращает 1, если блокировка создана, и 0, если слот уже был заблокирован
// Повторная блокировка не ошибка: операция идемпотентна
func (r *Repository) Upsert(ctx context.Context, block *domain.AdminBlock) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("admin_blocks").
		Columns("rule_id", "slot_date", "reason", "blocked_by").
		Values(block.RuleID, block.SlotDate, block.Reason, block.BlockedBy).
		Suffix("ON CONFLICT (rule_id, slot_date) DO NOTHING").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Upsert - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// Delete снимает блокировку слота
// Возвращает 1, если блокировка была снята, и 0, если её не было
func (r *Repository) Delete(ctx context.Context, ruleID int64, slotDate time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("admin_blocks").
		Where(squirrel.Eq{
			"rule_id":   ruleID,
			"slot_date": slotDate,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// DeleteByDate снимает все блокировки на указанную дату
// Возвращает количество снятых блокировок
func (r *Repository) DeleteByDate(ctx context.Context, slotDate time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("admin_blocks").
		Where(squirrel.Eq{"slot_date": slotDate}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDate - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// GetByDateRange получает блокировки в диапазоне дат для агрегатора слотов
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.AdminBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"rule_id",
		"slot_date",
		"reason",
		"blocked_by",
		"created_at",
	).
		From("admin_blocks").
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		OrderBy("slot_date ASC, rule_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlocks(rows)
}

// Exists проверяет, заблокирован ли слот (rule_id + дата)
// Используется при создании бронирования внутри транзакции
func (r *Repository) Exists(ctx context.Context, ruleID int64, slotDate time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("admin_blocks").
		Where(squirrel.Eq{
			"rule_id":   ruleID,
			"slot_date": slotDate,
		}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: Exists - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// scanBlocks сканирует результаты запроса в слайс блокировок
func (r *Repository) scanBlocks(rows *sql.Rows) ([]*domain.AdminBlock, error) {
	blocks := make([]*domain.AdminBlock, 0)

	for rows.Next() {
		var block domain.AdminBlock

		err := rows.Scan(
			&block.ID,
			&block.RuleID,
			&block.SlotDate,
			&block.Reason,
			&block.BlockedBy,
			&block.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}

		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
