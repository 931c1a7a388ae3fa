package models

import (
	"errors"
	"time"

	"github.com/coachpoint/CP-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// GetServiceBookingsRequest запрос на получение бронирований услуги
type GetServiceBookingsRequest struct {
	ServiceID        *int64     `json:"serviceId,omitempty"`        // Фильтр по услуге (опционально)
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetServiceBookingsRequest) ToDomainFilter() (domain.ServiceBookingsFilter, error) {
	filter := domain.ServiceBookingsFilter{
		ServiceID:        r.ServiceID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, ok := domain.ParseBookingStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	BookingNumber   string `json:"bookingNumber"`
	ServiceID       int64  `json:"serviceId"`
	ClientName      string `json:"clientName"`
	ClientEmail     string `json:"clientEmail"`
	ClientPhone     string `json:"clientPhone"`
	BookingDate     string `json:"bookingDate"` // "2026-09-15"
	StartTime       string `json:"startTime"`   // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Format          string `json:"format"`
	MeetingMode     string `json:"meetingMode"`
	Location        string `json:"location"`
	Goals           *string `json:"goals,omitempty"`

	// Стоимость
	SessionAmount    float64  `json:"sessionAmount"`
	TravelDistanceKm *float64 `json:"travelDistanceKm,omitempty"`
	TravelAmount     float64  `json:"travelAmount"`
	TotalAmount      float64  `json:"totalAmount"`

	PaymentStatus string `json:"paymentStatus"`
	Status        string `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:               b.ID,
		BookingNumber:    b.BookingNumber,
		ServiceID:        b.ServiceID,
		ClientName:       b.ClientName,
		ClientEmail:      b.ClientEmail,
		ClientPhone:      b.ClientPhone,
		BookingDate:      b.BookingDate.Format(domain.DateFormat),
		StartTime:        b.StartTime.String(),
		DurationMinutes:  b.DurationMinutes,
		Format:           b.Format,
		MeetingMode:      string(b.MeetingMode),
		Location:         b.Location,
		Goals:            b.Goals,
		SessionAmount:    b.SessionAmount,
		TravelDistanceKm: b.TravelDistanceKm,
		TravelAmount:     b.TravelAmount,
		TotalAmount:      b.TotalAmount,
		PaymentStatus:    string(b.PaymentStatus),
		Status:           string(b.Status),

		CancellationReason: b.CancellationReason,

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelled := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if resp := FromDomainBooking(b); resp != nil {
			result.Bookings = append(result.Bookings, *resp)
		}
	}

	return result
}
