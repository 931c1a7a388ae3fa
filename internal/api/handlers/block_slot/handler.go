package block_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/coachpoint/CP-BookingService/internal/api/handlers"
	"github.com/coachpoint/CP-BookingService/internal/api/middleware"
	blockSlots "github.com/coachpoint/CP-BookingService/internal/usecase/block_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSlotID      = "invalid slot id"
	msgRuleNotFound       = "availability rule not found"
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

// Handle PATCH /api/v1/availability/{slotId}/block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID := vars["slotId"]

	// Актор приходит из заголовка через middleware Auth
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /availability/{slotId}/block - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /availability/{slotId}/block - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.ExecuteSlot(r.Context(), &blockSlots.SlotRequest{
		SlotID:  slotID,
		Action:  req.Action,
		ActorID: adminID,
		Reason:  req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, blockSlots.ErrInvalidSlotID):
			h.logger.Warn("PATCH /availability/{slotId}/block - Invalid slot ID: %q", slotID)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		case errors.Is(err, blockSlots.ErrRuleNotFound):
			h.logger.Warn("PATCH /availability/{slotId}/block - Rule not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, blockSlots.ErrInvalidAction), errors.Is(err, blockSlots.ErrInvalidInput):
			h.logger.Warn("PATCH /availability/{slotId}/block - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /availability/{slotId}/block - Failed: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.IncSlotBlocked(result.Action)

	h.logger.Info("PATCH /availability/{slotId}/block - Done: slot_id=%s, action=%s, admin=%s, affected=%d",
		slotID, result.Action, adminID, result.AffectedSlots)
	handlers.RespondJSON(w, http.StatusOK, BlockSlotResponse{
		SlotID:        slotID,
		Action:        result.Action,
		AffectedSlots: result.AffectedSlots,
	})
}
