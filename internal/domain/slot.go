package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// ErrInvalidSlotID возвращается при некорректном идентификаторе слота
var ErrInvalidSlotID = errors.New("domain: invalid slot id, expected <ruleId>_<YYYY-MM-DD>")

// SlotInstance конкретное вхождение правила доступности на календарную дату
// Не хранится в БД - вычисляется проекцией правил на горизонт бронирования
type SlotInstance struct {
	RuleID      int64
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	MaxBookings int
}

// ID возвращает детерминированный ключ слота
// Один и тот же слот всегда получает один и тот же ключ, поэтому AdminBlock
// может ссылаться на него без материализации слота в БД
func (s *SlotInstance) ID() string {
	return FormatSlotID(s.RuleID, s.Date)
}

// SlotView слот в том виде, в котором его видит клиент при выборе времени
type SlotView struct {
	ID          string
	Date        time.Time
	Time        types.TimeString
	IsAvailable bool
	IsBlocked   bool
}

// FormatSlotID кодирует ключ слота в строку "<ruleId>_<YYYY-MM-DD>"
func FormatSlotID(ruleID int64, date time.Time) string {
	return fmt.Sprintf("%d_%s", ruleID, date.Format(DateFormat))
}

// ParseSlotID разбирает ключ слота обратно в (ruleID, date)
func ParseSlotID(id string) (int64, time.Time, error) {
	parts := strings.SplitN(id, "_", 2)
	if len(parts) != 2 {
		return 0, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidSlotID, id)
	}

	ruleID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || ruleID <= 0 {
		return 0, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidSlotID, id)
	}

	date, err := time.Parse(DateFormat, parts[1])
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidSlotID, id)
	}

	return ruleID, date, nil
}
