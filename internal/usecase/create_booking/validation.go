package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/coachpoint/CP-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if req.ClientEmail == "" {
		return fmt.Errorf("%w: clientEmail is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(req.ClientEmail); err != nil {
		return fmt.Errorf("%w: invalid clientEmail format", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	mode := domain.MeetingMode(req.MeetingMode)
	if !mode.IsValid() {
		return fmt.Errorf("%w: unknown meetingMode %q", ErrInvalidInput, req.MeetingMode)
	}

	if !domain.PackageOption(req.PackageOption).IsValid() {
		return fmt.Errorf("%w: unknown packageOption %q", ErrInvalidInput, req.PackageOption)
	}

	// Адрес клиента обязателен только при выезде тренера
	if mode.RequiresAddress() {
		if req.ClientAddress == nil || strings.TrimSpace(*req.ClientAddress) == "" {
			return fmt.Errorf("%w: clientAddress is required for coach_travels", ErrInvalidInput)
		}
		if len(*req.ClientAddress) > domain.MaxLocationLength {
			return fmt.Errorf("%w: clientAddress exceeds %d characters", ErrInvalidInput, domain.MaxLocationLength)
		}
	}

	// Дистанция выезда имеет смысл только при выезде тренера
	if req.TravelDistanceKm != nil && !mode.RequiresAddress() {
		return fmt.Errorf("%w: travelDistanceKm is only applicable to coach_travels", ErrInvalidInput)
	}

	if req.Goals != nil && len(*req.Goals) > domain.MaxGoalsLength {
		return fmt.Errorf("%w: goals exceed %d characters", ErrInvalidInput, domain.MaxGoalsLength)
	}

	return nil
}

// validateDate проверяет, что дата попадает в горизонт бронирования
// и не приходится на выходной
func validateDate(bookingDate time.Time, now time.Time, horizonDays int) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	weekday := bookingDate.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return ErrWeekendNotBookable
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, horizonDays-1)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, horizonDays)
	}

	return nil
}

// findRuleForSlot ищет активное правило, порождающее слот на указанные дату и время
// Сопоставление строго по точному совпадению времени начала
func findRuleForSlot(rules []*domain.AvailabilityRule, date time.Time, startTime string) *domain.AvailabilityRule {
	for _, rule := range rules {
		if rule.ProjectsOnto(date) && string(rule.StartTime) == startTime {
			return rule
		}
	}
	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
