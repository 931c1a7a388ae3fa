package bulk_block

// BulkBlockRequest HTTP request model
type BulkBlockRequest struct {
	Date   string  `json:"date"`   // "2026-09-15"
	Action string  `json:"action"` // block | unblock
	Reason *string `json:"reason,omitempty"`
}

// BulkBlockResponse HTTP response model
// AffectedSlots = 0 означает, что менять было нечего (день без слотов
// или все слоты уже в целевом состоянии)
type BulkBlockResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Date          string `json:"date"`
	Action        string `json:"action"`
	AffectedSlots int64  `json:"affectedSlots"`
}
