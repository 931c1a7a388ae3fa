package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	bookingStorage "github.com/coachpoint/CP-BookingService/internal/infra/storage/booking"
	catalogClient "github.com/coachpoint/CP-BookingService/internal/integrations/catalogservice"
	"github.com/coachpoint/CP-BookingService/internal/pricing"
	"github.com/coachpoint/CP-BookingService/pkg/ptr"
	"github.com/coachpoint/CP-BookingService/pkg/txmanager"
	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	blockRepo        AdminBlockRepository
	catalogClient    CatalogServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	horizonDays      int
	pricingParams    pricing.Params
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	blockRepo AdminBlockRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	horizonDays int,
	pricingParams pricing.Params,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		blockRepo:        blockRepo,
		catalogClient:    catalogClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		horizonDays:      horizonDays,
		pricingParams:    pricingParams,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости слота и вставка выполняются в одной сериализуемой
// транзакции: два конкурирующих запроса на один слот не создадут два бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, date=%s, time=%s, mode=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.MeetingMode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты: не в прошлом, не выходной, внутри горизонта
	if err := validateDate(req.Date, now, uc.horizonDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// Сегодняшний слот, чьё время уже прошло, бронировать нельзя
	if isSameDay(req.Date, now) && !types.NewTimeString(now).IsBefore(req.StartTime) {
		uc.logger.Warn("CreateBooking: slot %s %s already passed", req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, ErrInvalidTimeSlot
	}

	// 4. Получаем услугу из каталога
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Формат выводится из режима встречи и сверяется с услугой
	mode := domain.MeetingMode(req.MeetingMode)
	format := formatForMode(mode)
	if !service.SupportsFormat(format) {
		uc.logger.Warn("CreateBooking: service id=%d does not support format %s", req.ServiceID, format)
		return nil, ErrFormatNotSupported
	}

	// 6. Расчёт стоимости до транзакции: цены не зависят от состояния БД
	sessionAmount := pricing.SessionAmount(service, domain.PackageOption(req.PackageOption))

	// Travel fee считается сразу, только если дистанция уже известна
	// Для coach_travels без дистанции сумма выезда вносится администратором позже
	travelAmount := 0.0
	if req.TravelDistanceKm != nil {
		travelAmount, err = pricing.TravelAmount(*req.TravelDistanceKm, uc.pricingParams)
		if err != nil {
			uc.logger.Warn("CreateBooking: travel distance %.1f km rejected: %v", *req.TravelDistanceKm, err)
			return nil, fmt.Errorf("%w: %.0f km max", ErrTravelTooFar, uc.pricingParams.MaxTravelDistanceKm)
		}
	}

	location := pricing.LocationFor(mode, ptr.Deref(req.ClientAddress, ""))

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Слот должен существовать в расписании: ищем активное правило
		// с точным совпадением даты и времени начала
		rules, err := uc.availabilityRepo.GetActiveRules(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get availability rules: %v", err)
			return fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
		}

		rule := findRuleForSlot(rules, req.Date, string(req.StartTime))
		if rule == nil {
			uc.logger.Warn("CreateBooking: no slot at %s %s", req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrInvalidTimeSlot
		}

		// 7.2. Слот не должен быть закрыт администратором
		blocked, err := uc.blockRepo.Exists(txCtx, rule.ID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check admin block: %v", err)
			return fmt.Errorf("%w: failed to check admin block: %v", ErrInternal, err)
		}
		if blocked {
			uc.logger.Warn("CreateBooking: slot %s blocked by admin", domain.FormatSlotID(rule.ID, req.Date))
			return ErrSlotBlocked
		}

		// 7.3. Проверка занятости по ключу (service, date, time) с блокировкой строки
		existing, err := uc.bookingRepo.GetActiveByKey(txCtx, req.ServiceID, req.Date, req.StartTime)
		if err != nil && !errors.Is(err, bookingStorage.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: failed to check slot occupancy: %v", err)
			return fmt.Errorf("%w: failed to check slot occupancy: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Warn("CreateBooking: slot taken by booking id=%d", existing.ID)
			return ErrSlotTaken
		}

		// 7.4. Проверка вместимости слота по всем услугам
		activeCount, err := uc.bookingRepo.CountActiveAtDateTime(txCtx, req.Date, req.StartTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count active bookings: %v", err)
			return fmt.Errorf("%w: failed to count active bookings: %v", ErrInternal, err)
		}
		if activeCount >= rule.MaxBookings {
			uc.logger.Warn("CreateBooking: slot full, %d/%d taken", activeCount, rule.MaxBookings)
			return ErrSlotTaken
		}

		// 7.5. Создаем бронирование
		booking := &domain.Booking{
			BookingNumber:   generateBookingNumber(),
			ServiceID:       req.ServiceID,
			ClientName:      req.ClientName,
			ClientEmail:     req.ClientEmail,
			ClientPhone:     req.ClientPhone,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Format:          format,
			MeetingMode:     mode,
			Location:        location,
			Goals:           req.Goals,

			SessionAmount:    sessionAmount,
			TravelDistanceKm: req.TravelDistanceKm,
			TravelAmount:     travelAmount,
			TotalAmount:      pricing.Total(sessionAmount, travelAmount),

			PaymentStatus: domain.PaymentPending,
			Status:        domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Частичный уникальный индекс: параллельная транзакция успела занять слот
			if errors.Is(err, bookingStorage.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot taken, unique index rejected insert")
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации после повтора и таймаут транзакции - временные
		// сбои: клиент может безопасно повторить запрос
		if errors.Is(err, txmanager.ErrSerialization) || errors.Is(err, txmanager.ErrTxTimeout) {
			uc.logger.Warn("CreateBooking: transient transaction failure: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrTransient, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d number=%s total=%.2f",
		result.ID, result.BookingNumber, result.TotalAmount)

	return toResponse(result), nil
}

// formatForMode выводит формат сессии из режима встречи
func formatForMode(mode domain.MeetingMode) string {
	if mode == domain.MeetingVirtual {
		return domain.FormatVirtual
	}
	return domain.FormatInPerson
}
