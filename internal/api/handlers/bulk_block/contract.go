package bulk_block

import (
	"context"

	blockSlots "github.com/coachpoint/CP-BookingService/internal/usecase/block_slots"
)

type BlockSlotsUseCase interface {
	ExecuteBulk(ctx context.Context, req *blockSlots.BulkRequest) (*blockSlots.Response, error)
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
