package get_available_slots

import (
	"github.com/coachpoint/CP-BookingService/internal/domain"
	getSlots "github.com/coachpoint/CP-BookingService/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
// ServiceID и DurationMinutes опускаются при выборке по всем услугам
type AvailabilityResponse struct {
	ServiceID       *int64        `json:"serviceId,omitempty"`
	DurationMinutes int           `json:"durationMinutes,omitempty"`
	HorizonDays     int           `json:"horizonDays"`
	Days            []DayResponse `json:"days"`
}

// DayResponse слоты одного дня
type DayResponse struct {
	Date  string         `json:"date"`  // "2026-09-15"
	Label string         `json:"label"` // "Tuesday, 15 September 2026"
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse один слот расписания
type SlotResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`          // "2026-09-15"
	Time          string `json:"time"`          // "10:00"
	FormattedDate string `json:"formattedDate"` // "Tuesday, 15 September 2026"
	FormattedTime string `json:"formattedTime"` // "10:00 AM"
	IsAvailable   bool   `json:"isAvailable"`
	IsBlocked     bool   `json:"isBlocked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *AvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))

	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			// Время слота всегда валидно: оно взято из правила расписания
			formattedTime := slot.Time.String()
			if t, err := slot.Time.OnDate(slot.Date); err == nil {
				formattedTime = t.Format(domain.DisplayTimeFormat)
			}

			slots = append(slots, SlotResponse{
				ID:            slot.ID,
				Date:          slot.Date.Format(domain.DateFormat),
				Time:          slot.Time.String(),
				FormattedDate: slot.Date.Format(domain.DisplayDateFormat),
				FormattedTime: formattedTime,
				IsAvailable:   slot.IsAvailable,
				IsBlocked:     slot.IsBlocked,
			})
		}

		days = append(days, DayResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Label: day.Label,
			Slots: slots,
		})
	}

	return &AvailabilityResponse{
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		HorizonDays:     resp.HorizonDays,
		Days:            days,
	}
}
