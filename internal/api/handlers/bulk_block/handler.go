package bulk_block

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/coachpoint/CP-BookingService/internal/api/handlers"
	"github.com/coachpoint/CP-BookingService/internal/api/middleware"
	"github.com/coachpoint/CP-BookingService/internal/domain"
	blockSlots "github.com/coachpoint/CP-BookingService/internal/usecase/block_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgMissingAdminID     = "missing admin id"
)

type Handler struct {
	useCase BlockSlotsUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase BlockSlotsUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/bulk-block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Актор приходит из заголовка через middleware Auth
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("POST /availability/bulk-block - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	var req BulkBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/bulk-block - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /availability/bulk-block - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.ExecuteBulk(r.Context(), &blockSlots.BulkRequest{
		Date:    date,
		Action:  req.Action,
		ActorID: adminID,
		Reason:  req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, blockSlots.ErrInvalidAction), errors.Is(err, blockSlots.ErrInvalidInput):
			h.logger.Warn("POST /availability/bulk-block - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /availability/bulk-block - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.IncSlotBlocked(result.Action)

	h.logger.Info("POST /availability/bulk-block - Done: date=%s, action=%s, admin=%s, affected=%d",
		req.Date, result.Action, adminID, result.AffectedSlots)
	handlers.RespondJSON(w, http.StatusOK, BulkBlockResponse{
		Success:       true,
		Message:       bulkMessage(result.Action, result.AffectedSlots),
		Date:          req.Date,
		Action:        result.Action,
		AffectedSlots: result.AffectedSlots,
	})
}

func bulkMessage(action string, affected int64) string {
	if affected == 0 {
		return "no slots required changes"
	}
	return fmt.Sprintf("%d slot(s) %sed", affected, action)
}
