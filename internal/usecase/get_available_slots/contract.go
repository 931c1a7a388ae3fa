package get_available_slots

import (
	"context"
	"time"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	"github.com/coachpoint/CP-BookingService/internal/integrations/catalogservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetNonCancelledInRange получает неотменённые бронирования в диапазоне дат
	GetNonCancelledInRange(ctx context.Context, serviceID *int64, from, to time.Time) ([]*domain.Booking, error)
}

// AvailabilityRepository интерфейс репозитория правил доступности
type AvailabilityRepository interface {
	// GetActiveRules получает все активные правила доступности
	GetActiveRules(ctx context.Context) ([]*domain.AvailabilityRule, error)
}

// AdminBlockRepository интерфейс репозитория административных блокировок
type AdminBlockRepository interface {
	// GetByDateRange получает блокировки в диапазоне дат
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.AdminBlock, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
