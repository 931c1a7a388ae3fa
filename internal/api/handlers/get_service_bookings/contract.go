package get_service_bookings

import (
	"context"

	"github.com/coachpoint/CP-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetServiceBookings(ctx context.Context, req *models.GetServiceBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
