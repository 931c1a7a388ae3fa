package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	bookingStorage "github.com/coachpoint/CP-BookingService/internal/infra/storage/booking"
	"github.com/coachpoint/CP-BookingService/internal/pricing"
)

// UseCase use case для обновления бронирования: внесение дистанции выезда,
// смена статуса и подтверждение оплаты
type UseCase struct {
	bookingRepo   BookingRepository
	txManager     TransactionManager
	pricingParams pricing.Params
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	pricingParams pricing.Params,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		pricingParams: pricingParams,
		logger:        logger,
	}
}

// Execute выполняет use case обновления бронирования
// Чтение, проверки и запись идут в одной транзакции, чтобы смена статуса
// не прошла по устаревшему снимку бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d", req.BookingID)

	// 1. Валидация входных данных
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		// 2. Внесение дистанции выезда с пересчётом сумм на сервере
		// Суммы из запроса не принимаются: travel fee и итог считаются заново
		if req.TravelDistanceKm != nil {
			if booking.MeetingMode != domain.MeetingCoachTravels {
				uc.logger.Warn("UpdateBooking: id=%d mode=%s does not take a distance", booking.ID, booking.MeetingMode)
				return ErrDistanceNotApplicable
			}

			travelAmount, err := pricing.TravelAmount(*req.TravelDistanceKm, uc.pricingParams)
			if err != nil {
				uc.logger.Warn("UpdateBooking: travel distance %.1f km rejected: %v", *req.TravelDistanceKm, err)
				return fmt.Errorf("%w: %.0f km max", ErrTravelTooFar, uc.pricingParams.MaxTravelDistanceKm)
			}

			totalAmount := pricing.Total(booking.SessionAmount, travelAmount)
			if err := uc.bookingRepo.UpdateTravel(txCtx, booking.ID, *req.TravelDistanceKm, travelAmount, totalAmount); err != nil {
				uc.logger.Error("UpdateBooking: failed to update travel for id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to update travel: %v", ErrInternal, err)
			}

			booking.TravelDistanceKm = req.TravelDistanceKm
			booking.TravelAmount = travelAmount
			booking.TotalAmount = totalAmount

			uc.logger.Info("UpdateBooking: id=%d distance=%.1f km, travel=%.2f, total=%.2f",
				booking.ID, *req.TravelDistanceKm, travelAmount, totalAmount)
		}

		// 3. Смена статуса по машине состояний
		if req.Status != nil {
			target, ok := domain.ParseBookingStatus(*req.Status)
			if !ok {
				return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
			}

			if !booking.CanTransitionTo(target) {
				uc.logger.Warn("UpdateBooking: id=%d transition %s -> %s rejected", booking.ID, booking.Status, target)
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
			}

			// Подтверждение с выездом тренера требует внесённой дистанции:
			// без неё итоговая сумма не финальна
			if target == domain.StatusConfirmed && booking.NeedsTravelDistance() {
				uc.logger.Warn("UpdateBooking: id=%d cannot be confirmed without travel distance", booking.ID)
				return ErrDistanceRequired
			}

			if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, target); err != nil {
				uc.logger.Error("UpdateBooking: failed to update status for id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}

			booking.Status = target
			uc.logger.Info("UpdateBooking: id=%d status -> %s", booking.ID, target)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	return toResponse(result), nil
}

// ConfirmPayment помечает бронирование оплаченным и подтверждает его,
// когда итоговая сумма финальна. Для coach_travels без внесённой дистанции
// статус остаётся PENDING, пока администратор не внесёт дистанцию выезда
func (uc *UseCase) ConfirmPayment(ctx context.Context, req *PaymentRequest) (*Response, error) {
	uc.logger.Info("ConfirmPayment: id=%d", req.BookingID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	var result *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		if err := uc.bookingRepo.UpdatePayment(txCtx, booking.ID, domain.PaymentPaid); err != nil {
			uc.logger.Error("ConfirmPayment: failed to update payment for id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update payment: %v", ErrInternal, err)
		}
		booking.PaymentStatus = domain.PaymentPaid

		// Оплата подтверждает бронирование, если итог финален
		if booking.CanTransitionTo(domain.StatusConfirmed) && !booking.NeedsTravelDistance() {
			if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusConfirmed); err != nil {
				uc.logger.Error("ConfirmPayment: failed to confirm booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
			}
			booking.Status = domain.StatusConfirmed
			uc.logger.Info("ConfirmPayment: id=%d status -> %s", booking.ID, domain.StatusConfirmed)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmPayment: id=%d marked as paid", result.ID)

	return toResponse(result), nil
}

func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingStorage.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

func (uc *UseCase) validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	if req.TravelDistanceKm == nil && req.Status == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	return nil
}
