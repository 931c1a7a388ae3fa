package payment_callback

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/coachpoint/CP-BookingService/internal/api/handlers"
	updateBooking "github.com/coachpoint/CP-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgNotFound         = "booking not found"
)

// PaymentCallbackResponse HTTP response model
type PaymentCallbackResponse struct {
	ID            int64  `json:"id"`
	PaymentStatus string `json:"paymentStatus"`
	Status        string `json:"status"`
}

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

// Handle POST /api/v1/bookings/{bookingId}/payment-callback
// Оплата помечается, но статус бронирования не меняется: для coach_travels
// подтверждение возможно лишь после внесения дистанции выезда
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payment-callback - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.ConfirmPayment(r.Context(), &updateBooking.PaymentRequest{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payment-callback - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /bookings/{id}/payment-callback - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payment-callback - Payment confirmed: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, PaymentCallbackResponse{
		ID:            result.ID,
		PaymentStatus: result.PaymentStatus,
		Status:        result.Status,
	})
}
