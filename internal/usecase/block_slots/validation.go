package block_slots

import (
	"fmt"
	"strings"

	"github.com/coachpoint/CP-BookingService/internal/domain"
)

// validateSlotRequest валидирует запрос на операцию с одним слотом
func validateSlotRequest(req *SlotRequest) error {
	if strings.TrimSpace(req.SlotID) == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	if err := validateCommon(req.Action, req.ActorID, req.Reason); err != nil {
		return err
	}

	return nil
}

// validateBulkRequest валидирует запрос на массовую операцию
func validateBulkRequest(req *BulkRequest) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := validateCommon(req.Action, req.ActorID, req.Reason); err != nil {
		return err
	}

	return nil
}

// validateCommon общая часть валидации: действие, актор и причина
func validateCommon(action, actorID string, reason *string) error {
	if action != ActionBlock && action != ActionUnblock {
		return fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	// Актор всегда передаётся явно: действия администратора должны быть
	// атрибутированы, системного актора по умолчанию нет
	if strings.TrimSpace(actorID) == "" {
		return fmt.Errorf("%w: actorId is required", ErrInvalidInput)
	}

	if reason != nil && len(*reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}
