package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/coachpoint/CP-BookingService/internal/api/handlers"
	getSlots "github.com/coachpoint/CP-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidServiceID = "serviceId must be a positive integer"
	msgServiceNotFound  = "service not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?serviceId={id}
// serviceId опционален: без него отдаётся расписание по всем услугам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var serviceID *int64
	if raw := r.URL.Query().Get("serviceId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /availability - Invalid serviceId: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		serviceID = &parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{ServiceID: serviceID})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: service_id=%v", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: service_id=%v, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		default:
			h.logger.Error("GET /availability - Failed to get slots: service_id=%v, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Returned %d days for service_id=%v", len(result.Days), serviceID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
