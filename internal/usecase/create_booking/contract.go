package create_booking

import (
	"context"
	"time"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	"github.com/coachpoint/CP-BookingService/internal/integrations/catalogservice"
	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByKey(ctx context.Context, serviceID int64, date time.Time, startTime types.TimeString) (*domain.Booking, error)
	CountActiveAtDateTime(ctx context.Context, date time.Time, startTime types.TimeString) (int, error)
}

// AvailabilityRepository интерфейс репозитория правил доступности
type AvailabilityRepository interface {
	GetActiveRules(ctx context.Context) ([]*domain.AvailabilityRule, error)
}

// AdminBlockRepository интерфейс репозитория административных блокировок
type AdminBlockRepository interface {
	Exists(ctx context.Context, ruleID int64, slotDate time.Time) (bool, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
