package block_slot

import (
	"context"

	blockSlots "github.com/coachpoint/CP-BookingService/internal/usecase/block_slots"
)

type BlockSlotsUseCase interface {
	ExecuteSlot(ctx context.Context, req *blockSlots.SlotRequest) (*blockSlots.Response, error)
}

// Metrics счётчики административных действий над слотами
type Metrics interface {
	IncSlotBlocked(action string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
