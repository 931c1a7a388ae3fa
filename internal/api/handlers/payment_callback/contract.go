package payment_callback

import (
	"context"

	updateBooking "github.com/coachpoint/CP-BookingService/internal/usecase/update_booking"
)

type UpdateBookingUseCase interface {
	ConfirmPayment(ctx context.Context, req *updateBooking.PaymentRequest) (*updateBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
