package create_booking

import (
	"time"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID        int64            // ID услуги из каталога
	ClientName       string           // Имя клиента
	ClientEmail      string           // Email клиента
	ClientPhone      string           // Телефон клиента
	Date             time.Time        // Дата сессии (без времени)
	StartTime        types.TimeString // Время начала слота (например, "10:00")
	MeetingMode      string           // virtual | client_travels | coach_travels
	PackageOption    string           // single | package
	ClientAddress    *string          // Адрес клиента (обязателен для coach_travels)
	TravelDistanceKm *float64         // Дистанция выезда в км (опционально, может быть внесена позже)
	Goals            *string          // Цели сессии (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	BookingNumber   string           // Номер бронирования для клиента (BK-XXXXXXXX)
	ServiceID       int64            // ID услуги
	ClientName      string           // Имя клиента
	ClientEmail     string           // Email клиента
	BookingDate     time.Time        // Дата сессии
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность сессии в минутах
	Format          string           // virtual | in_person
	MeetingMode     string           // Режим встречи
	Location        string           // Место проведения
	Goals           *string          // Цели сессии

	// Стоимость
	SessionAmount    float64  // Стоимость сессии (или пакета)
	TravelDistanceKm *float64 // Дистанция выезда, если известна
	TravelAmount     float64  // Стоимость выезда
	TotalAmount      float64  // Итоговая сумма

	PaymentStatus string    // Статус оплаты
	Status        string    // Статус бронирования
	CreatedAt     time.Time // Время создания
	UpdatedAt     time.Time // Время обновления
}

func toResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:               booking.ID,
		BookingNumber:    booking.BookingNumber,
		ServiceID:        booking.ServiceID,
		ClientName:       booking.ClientName,
		ClientEmail:      booking.ClientEmail,
		BookingDate:      booking.BookingDate,
		StartTime:        booking.StartTime,
		DurationMinutes:  booking.DurationMinutes,
		Format:           booking.Format,
		MeetingMode:      string(booking.MeetingMode),
		Location:         booking.Location,
		Goals:            booking.Goals,
		SessionAmount:    booking.SessionAmount,
		TravelDistanceKm: booking.TravelDistanceKm,
		TravelAmount:     booking.TravelAmount,
		TotalAmount:      booking.TotalAmount,
		PaymentStatus:    string(booking.PaymentStatus),
		Status:           string(booking.Status),
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}
}
