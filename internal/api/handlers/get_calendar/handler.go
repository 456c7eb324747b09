package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/peycheff-com/mariia-hub-booking/internal/api/handlers"
	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	bookingsService "github.com/peycheff-com/mariia-hub-booking/internal/service/bookings"
)

const (
	msgInvalidDate      = "invalid date parameter, expected YYYY-MM-DD"
	msgInvalidDateRange = "endDate must not be before startDate"
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

// Handle GET /api/v1/admin/calendar?startDate=2026-03-01&endDate=2026-03-31
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /admin/calendar - Invalid startDate: %q", query.Get("startDate"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /admin/calendar - Invalid endDate: %q", query.Get("endDate"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Calendar(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			h.logger.Warn("GET /admin/calendar - Invalid range: start=%s, end=%s",
				start.Format(domain.DateFormat), end.Format(domain.DateFormat))
			handlers.RespondBadRequest(w, msgInvalidDateRange)
			return
		}
		h.logger.Error("GET /admin/calendar - Failed to build calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/calendar - %d days returned", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
