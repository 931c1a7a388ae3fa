package domain

// Booking horizon and defaults
const (
	// BookingHorizonDays горизонт бронирования: слоты отдаются на сегодня + 14 дней
	BookingHorizonDays = 14

	DefaultMaxBookingsPerSlot = 1
)

// Pricing defaults (переопределяются конфигом)
const (
	DefaultTravelRatePerKm     = 6.50
	DefaultMaxTravelDistanceKm = 100.0
)

// Session format constants
const (
	FormatVirtual  = "virtual"
	FormatInPerson = "in-person"
)

// PackageOption вариант покупки: разовая сессия или пакет со скидкой
type PackageOption string

const (
	PackageOptionSingle  PackageOption = "single"
	PackageOptionPackage PackageOption = "package"
)

// IsValid проверяет, что вариант покупки известен системе
func (p PackageOption) IsValid() bool {
	return p == PackageOptionSingle || p == PackageOptionPackage
}

// Fixed location descriptions for modes without a client address
const (
	LocationVirtual       = "Online video session"
	LocationClientTravels = "Coach's office"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// Человекочитаемые форматы для ответов API
	DisplayDateFormat = "Monday, 2 January 2006"
	DisplayTimeFormat = "3:04 PM"
)

// Validation limits
const (
	MaxClientNameLength = 200
	MaxLocationLength   = 500
	MaxGoalsLength      = 2000
	MaxReasonLength     = 500
)

// NonCancelledStatuses статусы, при которых бронирование продолжает занимать слот
// Слот освобождает только CANCELLED
var NonCancelledStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusRescheduled,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusRescheduled,
}

// ParseBookingStatus валидирует и конвертирует строку в BookingStatus
func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, status := range ValidStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}
