package get_available_slots

import (
	"fmt"
	"time"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// projectRules проецирует активные правила доступности на календарные даты
// горизонта бронирования [сегодня, сегодня + horizonDays)
//
// Выходные (суббота и воскресенье) не проецируются никогда, даже если правило
// на них указывает. Слоты сегодняшнего дня, чьё время уже прошло, отбрасываются
func projectRules(rules []*domain.AvailabilityRule, now time.Time, horizonDays int) []domain.SlotInstance {
	instances := make([]domain.SlotInstance, 0)

	today := truncateToDate(now)
	nowTime := types.NewTimeString(now)

	for offset := 0; offset < horizonDays; offset++ {
		date := today.AddDate(0, 0, offset)

		// Выходные исключены из расписания безусловно
		if isWeekend(date) {
			continue
		}

		for _, rule := range rules {
			if !rule.ProjectsOnto(date) {
				continue
			}

			// Сегодняшние слоты, чьё время начала уже прошло, не показываем
			if offset == 0 && !nowTime.IsBefore(rule.StartTime) {
				continue
			}

			instances = append(instances, domain.SlotInstance{
				RuleID:      rule.ID,
				Date:        date,
				StartTime:   rule.StartTime,
				EndTime:     rule.EndTime,
				MaxBookings: rule.MaxBookings,
			})
		}
	}

	return instances
}

// aggregateSlots объединяет проекции правил с бронированиями и блокировками
// Сопоставление строго по паре (дата, время начала)
//
// IsBlocked - слот закрыт администратором или вместимость по всем услугам
// исчерпана. IsAvailable дополнительно учитывает точное совпадение по услуге:
// слот, занятый этой же услугой, недоступен независимо от остатка вместимости
func aggregateSlots(
	instances []domain.SlotInstance,
	bookings []*domain.Booking,
	blocks []*domain.AdminBlock,
	serviceID *int64,
) []Slot {
	// Количество неотменённых бронирований по ключу (дата, время)
	// и занятые этой услугой ключи
	bookedCounts := make(map[string]int, len(bookings))
	serviceBooked := make(map[string]struct{})
	for _, booking := range bookings {
		if !booking.HoldsSlot() {
			continue
		}
		key := slotTimeKey(booking.BookingDate, booking.StartTime)
		bookedCounts[key]++
		if serviceID != nil && booking.ServiceID == *serviceID {
			serviceBooked[key] = struct{}{}
		}
	}

	// Блокировки по ключу (правило, дата)
	blockedKeys := make(map[string]struct{}, len(blocks))
	for _, block := range blocks {
		blockedKeys[blockKey(block.RuleID, block.SlotDate)] = struct{}{}
	}

	slots := make([]Slot, 0, len(instances))
	for _, instance := range instances {
		key := slotTimeKey(instance.Date, instance.StartTime)
		_, adminBlocked := blockedKeys[blockKey(instance.RuleID, instance.Date)]
		isBlocked := adminBlocked || bookedCounts[key] >= instance.MaxBookings

		_, takenByService := serviceBooked[key]

		slots = append(slots, Slot{
			ID:          instance.ID(),
			Date:        instance.Date,
			Time:        instance.StartTime,
			IsAvailable: !isBlocked && !takenByService,
			IsBlocked:   isBlocked,
		})
	}

	return slots
}

// groupSlotsByDay группирует слоты по дням в порядке возрастания даты и времени
// Слоты приходят уже упорядоченными: проекция идёт по дням, правила - по ID
func groupSlotsByDay(slots []Slot) []Day {
	days := make([]Day, 0)

	for _, slot := range slots {
		if len(days) == 0 || !days[len(days)-1].Date.Equal(slot.Date) {
			days = append(days, Day{
				Date:  slot.Date,
				Label: slot.Date.Format(domain.DisplayDateFormat),
				Slots: []Slot{},
			})
		}
		last := len(days) - 1
		days[last].Slots = append(days[last].Slots, slot)
	}

	// Внутри дня сортировка по времени начала
	for i := range days {
		sortSlotsByTime(days[i].Slots)
	}

	return days
}

// sortSlotsByTime сортирует слоты дня по времени начала (вставками, слотов в дне немного)
func sortSlotsByTime(slots []Slot) {
	for i := 1; i < len(slots); i++ {
		for j := i; j > 0 && slots[j].Time.IsBefore(slots[j-1].Time); j-- {
			slots[j], slots[j-1] = slots[j-1], slots[j]
		}
	}
}

// slotTimeKey ключ сопоставления бронирования со слотом: точное совпадение даты и времени
func slotTimeKey(date time.Time, startTime types.TimeString) string {
	return fmt.Sprintf("%s_%s", date.Format(domain.DateFormat), startTime)
}

// blockKey ключ блокировки слота
func blockKey(ruleID int64, date time.Time) string {
	return domain.FormatSlotID(ruleID, date)
}

// isWeekend проверяет, что дата приходится на субботу или воскресенье
func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// truncateToDate обнуляет время, оставляя только дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
