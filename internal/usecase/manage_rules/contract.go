package manage_rules

import (
	"context"

	"github.com/coachpoint/CP-BookingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория правил доступности
type AvailabilityRepository interface {
	CreateRule(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	SetActive(ctx context.Context, id int64, isActive bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
