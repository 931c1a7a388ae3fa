package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	catalogClient "github.com/coachpoint/CP-BookingService/internal/integrations/catalogservice"
)

// UseCase use case для получения расписания доступных слотов тренера
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	blockRepo        AdminBlockRepository
	catalogClient    CatalogServiceClient
	timeProvider     TimeProvider
	horizonDays      int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	blockRepo AdminBlockRepository,
	catalogClient CatalogServiceClient,
	horizonDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		blockRepo:        blockRepo,
		catalogClient:    catalogClient,
		timeProvider:     &RealTimeProvider{},
		horizonDays:      horizonDays,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%v", req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Если услуга указана, она должна существовать в каталоге
	// Без услуги отдаётся расписание целиком, длительность сессии неизвестна
	durationMinutes := 0
	if req.ServiceID != nil {
		service, err := uc.catalogClient.GetService(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		durationMinutes = service.DurationMinutes
	}

	// 4. Получаем активные правила доступности
	rules, err := uc.availabilityRepo.GetActiveRules(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
	}

	// 5. Проецируем правила на горизонт бронирования
	instances := projectRules(rules, now, uc.horizonDays)

	if len(instances) == 0 {
		uc.logger.Info("GetAvailableSlots: no slots projected for service=%v", req.ServiceID)
		return &Response{
			ServiceID:       req.ServiceID,
			DurationMinutes: durationMinutes,
			HorizonDays:     uc.horizonDays,
			Days:            []Day{},
		}, nil
	}

	from := truncateToDate(now)
	to := from.AddDate(0, 0, uc.horizonDays-1)

	// 6. Получаем неотменённые бронирования на горизонте
	// Календарь у тренера один: бронирование любой услуги занимает слот,
	// поэтому выборка не фильтруется по serviceID
	bookings, err := uc.bookingRepo.GetNonCancelledInRange(ctx, nil, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Получаем административные блокировки на горизонте
	blocks, err := uc.blockRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get admin blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get admin blocks: %v", ErrInternal, err)
	}

	// 8. Объединяем проекции с бронированиями и блокировками
	slots := aggregateSlots(instances, bookings, blocks, req.ServiceID)
	days := groupSlotsByDay(slots)

	uc.logger.Info("GetAvailableSlots: generated %d slots over %d days for service=%v",
		len(slots), len(days), req.ServiceID)

	return &Response{
		ServiceID:       req.ServiceID,
		DurationMinutes: durationMinutes,
		HorizonDays:     uc.horizonDays,
		Days:            days,
	}, nil
}
