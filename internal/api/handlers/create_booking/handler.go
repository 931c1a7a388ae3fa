package create_booking

import (
	"errors"
	"net/http"

	"github.com/coachpoint/CP-BookingService/internal/api/handlers"
	createBooking "github.com/coachpoint/CP-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgSlotTaken          = "this slot has just been booked, please pick another one"
	msgSlotBlocked        = "this slot is not open for booking"
	msgServiceNotFound    = "service not found"
	msgFormatNotSupported = "service is not offered in this format"
	msgInvalidBookingDate = "booking date is invalid"
	msgWeekend            = "weekends are not bookable"
	msgDateTooFar         = "booking date is beyond the booking horizon"
	msgInvalidTimeSlot    = "there is no bookable slot at this date and time"
	msgTravelTooFar       = "travel distance exceeds the service area"
	msgTransient          = "could not complete the booking right now, please retry"
)

type Handler struct {
	useCase CreateBookingUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: service_id=%d, date=%s, time=%s",
				req.ServiceID, req.Date, req.Time)
			h.metrics.IncSlotConflict()
			handlers.RespondErrorWithCode(w, http.StatusConflict, msgSlotTaken, handlers.CodeSlotTaken)

		case errors.Is(err, createBooking.ErrSlotBlocked):
			h.logger.Warn("POST /bookings - Slot blocked: service_id=%d, date=%s, time=%s",
				req.ServiceID, req.Date, req.Time)
			handlers.RespondErrorWithCode(w, http.StatusConflict, msgSlotBlocked, handlers.CodeSlotTaken)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrFormatNotSupported):
			h.logger.Warn("POST /bookings - Format not supported: service_id=%d, mode=%s", req.ServiceID, req.MeetingMode)
			handlers.RespondBadRequest(w, msgFormatNotSupported)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrWeekendNotBookable):
			h.logger.Warn("POST /bookings - Weekend not bookable: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgWeekend)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTravelTooFar):
			h.logger.Warn("POST /bookings - Travel too far: distance=%v", req.TravelDistanceKm)
			handlers.RespondBadRequest(w, msgTravelTooFar)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrTransient):
			h.logger.Error("POST /bookings - Transient failure: service_id=%d, error=%v", req.ServiceID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgTransient)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service_id=%d, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.IncBookingCreated(result.MeetingMode)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, number=%s, service_id=%d",
		result.ID, result.BookingNumber, req.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
