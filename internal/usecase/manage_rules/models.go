package manage_rules

import (
	"time"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// CreateRequest модель запроса на создание правила доступности
// Правило ровно одного вида: weekly требует DayOfWeek, specific_date - дату
type CreateRequest struct {
	Type         string           // weekly | specific_date
	DayOfWeek    *int             // 0=Sunday ... 6=Saturday (только weekly)
	SpecificDate *time.Time       // Только specific_date
	StartTime    types.TimeString // Время начала слота
	EndTime      types.TimeString // Время окончания слота
	MaxBookings  int              // Вместимость слота (0 - значение по умолчанию)
}

// SetActiveRequest модель запроса на включение/выключение правила
type SetActiveRequest struct {
	RuleID   int64 // ID правила
	IsActive bool  // Целевое состояние
}

// Response модель ответа с правилом доступности
type Response struct {
	ID           int64            // ID правила
	Type         string           // weekly | specific_date
	DayOfWeek    *int             // День недели (weekly)
	SpecificDate *time.Time       // Конкретная дата (specific_date)
	StartTime    types.TimeString // Время начала
	EndTime      types.TimeString // Время окончания
	MaxBookings  int              // Вместимость слота
	IsActive     bool             // Правило проецируется в слоты
	CreatedAt    time.Time        // Время создания
	UpdatedAt    time.Time        // Время обновления
}

func toResponse(rule *domain.AvailabilityRule) *Response {
	return &Response{
		ID:           rule.ID,
		Type:         string(rule.Type),
		DayOfWeek:    rule.DayOfWeek,
		SpecificDate: rule.SpecificDate,
		StartTime:    rule.StartTime,
		EndTime:      rule.EndTime,
		MaxBookings:  rule.MaxBookings,
		IsActive:     rule.IsActive,
		CreatedAt:    rule.CreatedAt,
		UpdatedAt:    rule.UpdatedAt,
	}
}
