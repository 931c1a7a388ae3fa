package manage_rules

import (
	"fmt"

	"github.com/coachpoint/CP-BookingService/internal/domain"
)

// validateCreateRequest валидирует запрос на создание правила
func validateCreateRequest(req *CreateRequest) error {
	switch domain.RuleType(req.Type) {
	case domain.RuleWeekly:
		if req.DayOfWeek == nil {
			return fmt.Errorf("%w: dayOfWeek is required for weekly rules", ErrInvalidInput)
		}
		if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
			return fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
		}
		if req.SpecificDate != nil {
			return fmt.Errorf("%w: specificDate is not applicable to weekly rules", ErrInvalidInput)
		}
	case domain.RuleSpecificDate:
		if req.SpecificDate == nil {
			return fmt.Errorf("%w: specificDate is required for specific_date rules", ErrInvalidInput)
		}
		if req.DayOfWeek != nil {
			return fmt.Errorf("%w: dayOfWeek is not applicable to specific_date rules", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown rule type %q", ErrInvalidInput, req.Type)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.MaxBookings < 0 {
		return fmt.Errorf("%w: maxBookings must not be negative", ErrInvalidInput)
	}

	return nil
}
