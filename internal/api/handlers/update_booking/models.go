package update_booking

import (
	"time"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	updateBooking "github.com/coachpoint/CP-BookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
// Суммы в запросе не принимаются: travel fee и итог пересчитываются сервером
type UpdateBookingRequest struct {
	TravelDistanceKm *float64 `json:"travelDistanceKm,omitempty"`
	Status           *string  `json:"status,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64    `json:"id"`
	BookingNumber    string   `json:"bookingNumber"`
	ServiceID        int64    `json:"serviceId"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	MeetingMode      string   `json:"meetingMode"`
	SessionAmount    float64  `json:"sessionAmount"`
	TravelDistanceKm *float64 `json:"travelDistanceKm,omitempty"`
	TravelAmount     float64  `json:"travelAmount"`
	TotalAmount      float64  `json:"totalAmount"`
	PaymentStatus    string   `json:"paymentStatus"`
	Status           string   `json:"status"`
	UpdatedAt        string   `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		BookingNumber:    resp.BookingNumber,
		ServiceID:        resp.ServiceID,
		Date:             resp.BookingDate.Format(domain.DateFormat),
		Time:             resp.StartTime.String(),
		MeetingMode:      resp.MeetingMode,
		SessionAmount:    resp.SessionAmount,
		TravelDistanceKm: resp.TravelDistanceKm,
		TravelAmount:     resp.TravelAmount,
		TotalAmount:      resp.TotalAmount,
		PaymentStatus:    resp.PaymentStatus,
		Status:           resp.Status,
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
