package get_schedule

import (
	"net/http"

	"github.com/peycheff-com/mariia-hub-booking/internal/api/handlers"
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

// Handle GET /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetWeekSchedule(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule - Failed to build week schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule - Week schedule returned")
	handlers.RespondJSON(w, http.StatusOK, result)
}
