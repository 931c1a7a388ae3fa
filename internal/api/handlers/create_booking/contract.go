package create_booking

import (
	"context"

	createBooking "github.com/coachpoint/CP-BookingService/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Metrics счётчики бизнес-событий бронирования
type Metrics interface {
	IncBookingCreated(meetingMode string)
	IncSlotConflict()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
