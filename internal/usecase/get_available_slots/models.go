package get_available_slots

import (
	"time"

	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
// ServiceID опционален: без него отдаётся расписание по всем услугам
type Request struct {
	ServiceID *int64 // ID услуги из каталога (nil - все услуги)
}

// Response модель ответа со списком слотов на горизонт бронирования
type Response struct {
	ServiceID       *int64 // ID услуги (nil при выборке по всем услугам)
	DurationMinutes int    // Длительность сессии по данным каталога (0 без услуги)
	HorizonDays     int    // Горизонт бронирования в днях
	Days            []Day  // Дни с хотя бы одним слотом, по возрастанию даты
}

// Day слоты одного календарного дня
type Day struct {
	Date  time.Time // Дата (без времени)
	Label string    // Человекочитаемая дата для фронта
	Slots []Slot    // Слоты дня, по возрастанию времени
}

// Slot модель слота в расписании тренера
type Slot struct {
	ID          string           // Идентификатор слота: "<ruleID>_<YYYY-MM-DD>"
	Date        time.Time        // Дата слота
	Time        types.TimeString // Время начала (например, "10:00")
	IsAvailable bool             // Слот свободен для бронирования
	IsBlocked   bool             // Слот закрыт администратором
}
