package create_booking

import (
	"errors"
	"net/http"

	"github.com/peycheff-com/mariia-hub-booking/internal/api/handlers"
	bookingsService "github.com/peycheff-com/mariia-hub-booking/internal/service/bookings"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDate         = "invalid bookingDate, expected ISO 8601 timestamp"
	msgInvalidBookingDate  = "booking date must be in the future"
	msgTooLateToBook       = "too late to book this date"
	msgUnsupportedCurrency = "unsupported currency"
	msgInvalidInput        = "invalid booking data"
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse bookingDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidBookingDate):
			h.logger.Warn("POST /bookings - Booking date in the past: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, bookingsService.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, bookingsService.ErrUnsupportedCurrency):
			h.logger.Warn("POST /bookings - Unsupported currency: %q", req.Currency)
			handlers.RespondBadRequest(w, msgUnsupportedCurrency)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, service=%s", result.ID, req.ServiceRef)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
