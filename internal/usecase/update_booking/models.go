package update_booking

import (
	"time"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// Request модель запроса на обновление бронирования
// Оба поля опциональны: можно внести дистанцию, сменить статус или и то и другое
type Request struct {
	BookingID        int64    // ID бронирования
	TravelDistanceKm *float64 // Дистанция выезда в км
	Status           *string  // Целевой статус
}

// PaymentRequest модель запроса на подтверждение оплаты
type PaymentRequest struct {
	BookingID int64 // ID бронирования
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID               int64            // ID бронирования
	BookingNumber    string           // Номер бронирования
	ServiceID        int64            // ID услуги
	BookingDate      time.Time        // Дата сессии
	StartTime        types.TimeString // Время начала
	MeetingMode      string           // Режим встречи
	SessionAmount    float64          // Стоимость сессии
	TravelDistanceKm *float64         // Дистанция выезда
	TravelAmount     float64          // Стоимость выезда
	TotalAmount      float64          // Итоговая сумма
	PaymentStatus    string           // Статус оплаты
	Status           string           // Статус бронирования
	UpdatedAt        time.Time        // Время обновления
}

func toResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:               booking.ID,
		BookingNumber:    booking.BookingNumber,
		ServiceID:        booking.ServiceID,
		BookingDate:      booking.BookingDate,
		StartTime:        booking.StartTime,
		MeetingMode:      string(booking.MeetingMode),
		SessionAmount:    booking.SessionAmount,
		TravelDistanceKm: booking.TravelDistanceKm,
		TravelAmount:     booking.TravelAmount,
		TotalAmount:      booking.TotalAmount,
		PaymentStatus:    string(booking.PaymentStatus),
		Status:           string(booking.Status),
		UpdatedAt:        booking.UpdatedAt,
	}
}
