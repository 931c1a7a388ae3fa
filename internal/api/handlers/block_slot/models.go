package block_slot

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	Action string  `json:"action"` // block | unblock
	Reason *string `json:"reason,omitempty"`
}

// BlockSlotResponse HTTP response model
// AffectedSlots = 0 означает, что слот уже был в целевом состоянии
type BlockSlotResponse struct {
	SlotID        string `json:"slotId"`
	Action        string `json:"action"`
	AffectedSlots int64  `json:"affectedSlots"`
}
