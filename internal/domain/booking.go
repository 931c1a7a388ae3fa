package domain

import (
	"time"

	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending     BookingStatus = "PENDING"
	StatusConfirmed   BookingStatus = "CONFIRMED"
	StatusCompleted   BookingStatus = "COMPLETED"
	StatusCancelled   BookingStatus = "CANCELLED"
	StatusRescheduled BookingStatus = "RESCHEDULED"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// MeetingMode determines where the session happens and whether a travel fee applies
type MeetingMode string

const (
	MeetingVirtual       MeetingMode = "virtual"
	MeetingClientTravels MeetingMode = "client_travels"
	MeetingCoachTravels  MeetingMode = "coach_travels"
)

// IsValid проверяет, что режим встречи известен системе
func (m MeetingMode) IsValid() bool {
	return m == MeetingVirtual || m == MeetingClientTravels || m == MeetingCoachTravels
}

// RequiresAddress возвращает true, если режим требует адрес клиента
func (m MeetingMode) RequiresAddress() bool {
	return m == MeetingCoachTravels
}

// Booking represents a coaching session reservation
// Инвариант: на связку (service_id, booking_date, start_time) может существовать
// не более одного бронирования со статусом, отличным от CANCELLED
type Booking struct {
	ID            int64
	BookingNumber string // Человекочитаемый номер вида BK-XXXXXXXX
	ServiceID     int64

	ClientName  string
	ClientEmail string
	ClientPhone string

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int

	Format      string // virtual | in-person
	MeetingMode MeetingMode
	Location    string
	Goals       *string

	// Денежные поля: TotalAmount всегда пересчитывается как session + travel,
	// отдельно не редактируется
	SessionAmount    float64
	TravelDistanceKm *float64 // nil, пока администратор не внёс дистанцию (coach_travels)
	TravelAmount     float64
	TotalAmount      float64

	PaymentStatus PaymentStatus
	Status        BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoldsSlot returns true if the booking still occupies its slot
// Слот освобождает только отмена
func (b *Booking) HoldsSlot() bool {
	return b.Status != StatusCancelled
}

// IsTerminal returns true if no further status transitions are allowed
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusRescheduled
}

// CanTransitionTo проверяет допустимость перехода статуса
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled || target == StatusRescheduled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled || target == StatusRescheduled
	case StatusRescheduled:
		return target == StatusCancelled
	default:
		// COMPLETED и CANCELLED - терминальные статусы
		return false
	}
}

// NeedsTravelDistance возвращает true, если по бронированию ещё не внесена
// дистанция выезда (travel fee и итог не финальны)
func (b *Booking) NeedsTravelDistance() bool {
	return b.MeetingMode == MeetingCoachTravels && b.TravelDistanceKm == nil
}

// ServiceBookingsFilter фильтр для выборки бронирований услуги
type ServiceBookingsFilter struct {
	ServiceID        *int64         // nil - бронирования по всем услугам
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
