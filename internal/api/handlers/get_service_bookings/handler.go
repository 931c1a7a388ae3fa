package get_service_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/coachpoint/CP-BookingService/internal/api/handlers"
	"github.com/coachpoint/CP-BookingService/internal/domain"
	"github.com/coachpoint/CP-BookingService/internal/service/bookings"
	"github.com/coachpoint/CP-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidServiceID = "invalid service id"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidFilter    = "invalid filter parameters"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/bookings
// Query параметры: startDate, endDate (YYYY-MM-DD), status, includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil || serviceID <= 0 {
		h.logger.Warn("GET /services/{id}/bookings - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	req := &models.GetServiceBookingsRequest{ServiceID: &serviceID}
	query := r.URL.Query()

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /services/{id}/bookings - Invalid startDate %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /services/{id}/bookings - Invalid endDate %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	req.IncludeCancelled = query.Get("includeCancelled") == "true"

	result, err := h.service.GetServiceBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/bookings - Invalid filter: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /services/{id}/bookings - Failed: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/bookings - Returned %d bookings for service_id=%d",
		len(result.Bookings), serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
