package create_booking

import (
	"time"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	createBooking "github.com/coachpoint/CP-BookingService/internal/usecase/create_booking"
	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID        int64    `json:"serviceId"`
	ClientName       string   `json:"clientName"`
	ClientEmail      string   `json:"clientEmail"`
	ClientPhone      string   `json:"clientPhone"`
	Date             string   `json:"date"` // "2026-09-15"
	Time             string   `json:"time"` // "10:00"
	MeetingMode      string   `json:"meetingMode"`
	PackageOption    string   `json:"packageOption"`
	ClientAddress    *string  `json:"clientAddress,omitempty"`
	TravelDistanceKm *float64 `json:"travelDistanceKm,omitempty"`
	Goals            *string  `json:"goals,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	BookingNumber   string  `json:"bookingNumber"`
	ServiceID       int64   `json:"serviceId"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	DurationMinutes int     `json:"durationMinutes"`
	Format          string  `json:"format"`
	MeetingMode     string  `json:"meetingMode"`
	Location        string  `json:"location"`
	Goals           *string `json:"goals,omitempty"`

	SessionAmount    float64  `json:"sessionAmount"`
	TravelDistanceKm *float64 `json:"travelDistanceKm,omitempty"`
	TravelAmount     float64  `json:"travelAmount"`
	TotalAmount      float64  `json:"totalAmount"`

	PaymentStatus string `json:"paymentStatus"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ServiceID:        r.ServiceID,
		ClientName:       r.ClientName,
		ClientEmail:      r.ClientEmail,
		ClientPhone:      r.ClientPhone,
		Date:             date,
		StartTime:        startTime,
		MeetingMode:      r.MeetingMode,
		PackageOption:    r.PackageOption,
		ClientAddress:    r.ClientAddress,
		TravelDistanceKm: r.TravelDistanceKm,
		Goals:            r.Goals,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		BookingNumber:    resp.BookingNumber,
		ServiceID:        resp.ServiceID,
		ClientName:       resp.ClientName,
		ClientEmail:      resp.ClientEmail,
		Date:             resp.BookingDate.Format(domain.DateFormat),
		Time:             resp.StartTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		Format:           resp.Format,
		MeetingMode:      resp.MeetingMode,
		Location:         resp.Location,
		Goals:            resp.Goals,
		SessionAmount:    resp.SessionAmount,
		TravelDistanceKm: resp.TravelDistanceKm,
		TravelAmount:     resp.TravelAmount,
		TotalAmount:      resp.TotalAmount,
		PaymentStatus:    resp.PaymentStatus,
		Status:           resp.Status,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
