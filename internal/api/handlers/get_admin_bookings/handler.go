package get_admin_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/peycheff-com/mariia-hub-booking/internal/api/handlers"
	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	bookingsService "github.com/peycheff-com/mariia-hub-booking/internal/service/bookings"
	"github.com/peycheff-com/mariia-hub-booking/internal/service/bookings/models"
)

const (
	msgInvalidDate  = "invalid date parameter, expected YYYY-MM-DD"
	msgInvalidInput = "invalid query parameters"
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

// Handle GET /api/v1/admin/bookings?startDate=2026-03-01&endDate=2026-03-31&status=pending&location=studio&includeCancelled=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid startDate: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}
	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid endDate: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if location := query.Get("location"); location != "" {
		req.Location = &location
	}
	if query.Get("includeCancelled") == "true" {
		req.IncludeCancelled = true
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - %d bookings returned", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
