package create_rule

import (
	"time"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	manageRules "github.com/coachpoint/CP-BookingService/internal/usecase/manage_rules"
	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// CreateRuleRequest HTTP request model
type CreateRuleRequest struct {
	Type         string  `json:"type"`                   // weekly | specific_date
	DayOfWeek    *int    `json:"dayOfWeek,omitempty"`    // 0=Sunday ... 6=Saturday
	SpecificDate *string `json:"specificDate,omitempty"` // YYYY-MM-DD
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	MaxBookings  int     `json:"maxBookings,omitempty"`
}

// RuleResponse HTTP response model
type RuleResponse struct {
	ID           int64   `json:"id"`
	Type         string  `json:"type"`
	DayOfWeek    *int    `json:"dayOfWeek,omitempty"`
	SpecificDate *string `json:"specificDate,omitempty"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	MaxBookings  int     `json:"maxBookings"`
	IsActive     bool    `json:"isActive"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRuleRequest) ToUseCaseRequest() (*manageRules.CreateRequest, error) {
	var specificDate *time.Time
	if r.SpecificDate != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.SpecificDate)
		if err != nil {
			return nil, err
		}
		specificDate = &parsed
	}

	return &manageRules.CreateRequest{
		Type:         r.Type,
		DayOfWeek:    r.DayOfWeek,
		SpecificDate: specificDate,
		StartTime:    types.TimeString(r.StartTime),
		EndTime:      types.TimeString(r.EndTime),
		MaxBookings:  r.MaxBookings,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *manageRules.Response) *RuleResponse {
	var specificDate *string
	if resp.SpecificDate != nil {
		formatted := resp.SpecificDate.Format(domain.DateFormat)
		specificDate = &formatted
	}

	return &RuleResponse{
		ID:           resp.ID,
		Type:         resp.Type,
		DayOfWeek:    resp.DayOfWeek,
		SpecificDate: specificDate,
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		MaxBookings:  resp.MaxBookings,
		IsActive:     resp.IsActive,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
