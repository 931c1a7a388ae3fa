package create_rule

import (
	"errors"
	"net/http"

	"github.com/coachpoint/CP-BookingService/internal/api/handlers"
	"github.com/coachpoint/CP-BookingService/internal/api/middleware"
	manageRules "github.com/coachpoint/CP-BookingService/internal/usecase/manage_rules"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "specificDate must be in YYYY-MM-DD format"
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

// Handle POST /api/v1/availability/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("POST /availability/rules - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	var req CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/rules - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.ExecuteCreate(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, manageRules.ErrInvalidInput):
			h.logger.Warn("POST /availability/rules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /availability/rules - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/rules - Created: id=%d, type=%s, admin=%s",
		result.ID, result.Type, adminID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
