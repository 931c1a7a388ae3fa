package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/coachpoint/CP-BookingService/internal/api/handlers"
	updateBooking "github.com/coachpoint/CP-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID      = "invalid booking id"
	msgInvalidRequestBody    = "invalid request body"
	msgNotFound              = "booking not found"
	msgInvalidTransition     = "status transition is not allowed"
	msgDistanceRequired      = "travel distance must be set before the booking can be confirmed"
	msgDistanceNotApplicable = "travel distance only applies to coach_travels bookings"
	msgTravelTooFar          = "travel distance exceeds the service area"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateBooking.Request{
		BookingID:        bookingID,
		TravelDistanceKm: req.TravelDistanceKm,
		Status:           req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id} - Invalid transition: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, updateBooking.ErrDistanceRequired):
			h.logger.Warn("PATCH /bookings/{id} - Distance required: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgDistanceRequired)

		case errors.Is(err, updateBooking.ErrDistanceNotApplicable):
			h.logger.Warn("PATCH /bookings/{id} - Distance not applicable: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgDistanceNotApplicable)

		case errors.Is(err, updateBooking.ErrTravelTooFar):
			h.logger.Warn("PATCH /bookings/{id} - Travel too far: booking_id=%d, distance=%v", bookingID, req.TravelDistanceKm)
			handlers.RespondBadRequest(w, msgTravelTooFar)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated: booking_id=%d, status=%s, total=%.2f",
		bookingID, result.Status, result.TotalAmount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
