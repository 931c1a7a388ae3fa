package block_slots

import (
	"context"
	"time"

	"github.com/coachpoint/CP-BookingService/internal/domain"
)

// AdminBlockRepository интерфейс репозитория административных блокировок
type AdminBlockRepository interface {
	Upsert(ctx context.Context, block *domain.AdminBlock) (int64, error)
	Delete(ctx context.Context, ruleID int64, slotDate time.Time) (int64, error)
	DeleteByDate(ctx context.Context, slotDate time.Time) (int64, error)
}

// AvailabilityRepository интерфейс репозитория правил доступности
type AvailabilityRepository interface {
	GetActiveRules(ctx context.Context) ([]*domain.AvailabilityRule, error)
	GetRuleByID(ctx context.Context, id int64) (*domain.AvailabilityRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
