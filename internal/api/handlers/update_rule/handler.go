package update_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/coachpoint/CP-BookingService/internal/api/handlers"
	"github.com/coachpoint/CP-BookingService/internal/api/middleware"
	manageRules "github.com/coachpoint/CP-BookingService/internal/usecase/manage_rules"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRuleID      = "invalid rule id"
	msgMissingIsActive    = "isActive is required"
	msgRuleNotFound       = "availability rule not found"
	msgMissingAdminID     = "missing admin id"
)

type Handler struct {
	useCase ManageRulesUseCase
	logger  Logger
}

func NewHandler(useCase ManageRulesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/availability/rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ruleID, err := strconv.ParseInt(vars["ruleId"], 10, 64)
	if err != nil || ruleID <= 0 {
		h.logger.Warn("PATCH /availability/rules/{ruleId} - Invalid rule ID: %q", vars["ruleId"])
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /availability/rules/{ruleId} - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	var req UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /availability/rules/{ruleId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.IsActive == nil {
		h.logger.Warn("PATCH /availability/rules/{ruleId} - Missing isActive: rule_id=%d", ruleID)
		handlers.RespondBadRequest(w, msgMissingIsActive)
		return
	}

	result, err := h.useCase.ExecuteSetActive(r.Context(), &manageRules.SetActiveRequest{
		RuleID:   ruleID,
		IsActive: *req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, manageRules.ErrRuleNotFound):
			h.logger.Warn("PATCH /availability/rules/{ruleId} - Rule not found: rule_id=%d", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, manageRules.ErrInvalidInput):
			h.logger.Warn("PATCH /availability/rules/{ruleId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /availability/rules/{ruleId} - Failed: rule_id=%d, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /availability/rules/{ruleId} - Done: rule_id=%d, active=%t, admin=%s",
		ruleID, result.IsActive, adminID)
	handlers.RespondJSON(w, http.StatusOK, UpdateRuleResponse{
		ID:       result.ID,
		IsActive: result.IsActive,
	})
}
