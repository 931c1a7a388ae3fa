package block_slots

import "time"

// Действия над слотом
const (
	ActionBlock   = "block"
	ActionUnblock = "unblock"
)

// SlotRequest модель запроса на блокировку или разблокировку одного слота
type SlotRequest struct {
	SlotID  string  // Идентификатор слота: "<ruleID>_<YYYY-MM-DD>"
	Action  string  // block | unblock
	ActorID string  // Идентификатор администратора, выполняющего действие
	Reason  *string // Причина блокировки (опционально)
}

// BulkRequest модель запроса на блокировку или разблокировку всех слотов дня
type BulkRequest struct {
	Date    time.Time // Дата, все слоты которой затрагиваются
	Action  string    // block | unblock
	ActorID string    // Идентификатор администратора, выполняющего действие
	Reason  *string   // Причина блокировки (опционально)
}

// Response результат операции над слотами
// AffectedSlots = 0 - валидный исход: слот уже был в целевом состоянии
type Response struct {
	Action        string // Выполненное действие
	AffectedSlots int64  // Количество фактически изменённых слотов
}
