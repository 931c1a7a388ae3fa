package domain

import (
	"time"

	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// RuleType вид правила доступности
type RuleType string

const (
	// RuleWeekly еженедельное правило: проецируется на каждую дату горизонта
	// с совпадающим днём недели
	RuleWeekly RuleType = "weekly"

	// RuleSpecificDate разовое правило на конкретную календарную дату
	RuleSpecificDate RuleType = "specific_date"
)

// AvailabilityRule represents a recurring or one-off availability window
// Инвариант: правило ровно одного вида - у weekly задан DayOfWeek,
// у specific_date задана SpecificDate, никогда оба сразу
type AvailabilityRule struct {
	ID           int64
	Type         RuleType
	DayOfWeek    *int       // 0=Sunday ... 6=Saturday (только weekly)
	SpecificDate *time.Time // Только specific_date
	StartTime    types.TimeString
	EndTime      types.TimeString
	MaxBookings  int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProjectsOnto возвращает true, если правило порождает слот на указанную дату
func (r *AvailabilityRule) ProjectsOnto(date time.Time) bool {
	switch r.Type {
	case RuleWeekly:
		return r.DayOfWeek != nil && int(date.Weekday()) == *r.DayOfWeek
	case RuleSpecificDate:
		return r.SpecificDate != nil && sameDate(*r.SpecificDate, date)
	default:
		return false
	}
}

// AdminBlock represents an admin override on a resolved slot instance
// Привязан к вычисляемому ключу (rule_id, slot_date), а не к хранимой строке
// слота: слоты не материализуются в БД
type AdminBlock struct {
	ID        int64
	RuleID    int64
	SlotDate  time.Time
	Reason    string
	BlockedBy string // Идентификатор администратора, переданный вызывающей стороной
	CreatedAt time.Time
}

// sameDate сравнивает только календарные даты, без времени
func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
