package get_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/peycheff-com/mariia-hub-booking/internal/api/handlers"
	slotsService "github.com/peycheff-com/mariia-hub-booking/internal/service/slots"
	"github.com/peycheff-com/mariia-hub-booking/internal/service/slots/models"
)

const (
	msgInvalidDay   = "invalid day parameter, expected 0..6"
	msgInvalidInput = "invalid query parameters"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?day=1&location=studio&onlyAvailable=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	day, err := strconv.Atoi(query.Get("day"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid day parameter: %q", query.Get("day"))
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	req := &models.ListSlotsRequest{
		DayOfWeek: day,
	}
	if location := query.Get("location"); location != "" {
		req.Location = &location
	}
	if query.Get("onlyAvailable") == "true" {
		req.OnlyAvailable = true
	}

	result, err := h.service.ListForDay(r.Context(), req)
	if err != nil {
		if errors.Is(err, slotsService.ErrInvalidInput) {
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /slots - Failed to list slots: day=%d, error=%v", day, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - %d slots returned for day=%d", len(result.Slots), day)
	handlers.RespondJSON(w, http.StatusOK, result)
}
