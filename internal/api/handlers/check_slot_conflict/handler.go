package check_slot_conflict

import (
	"errors"
	"net/http"

	"github.com/peycheff-com/mariia-hub-booking/internal/api/handlers"
	checkSlotConflict "github.com/peycheff-com/mariia-hub-booking/internal/usecase/check_slot_conflict"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTimeOrID    = "invalid time format or excludeSlotId"
	msgInvalidTimeRange   = "startTime must be before endTime"
	msgInvalidInput       = "invalid slot data"
)

type Handler struct {
	useCase CheckSlotConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/slots/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/slots/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeOrID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSlotConflict.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/slots/check - Invalid time range: start=%s, end=%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, checkSlotConflict.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/slots/check - Failed to check conflict: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots/check - Checked: day=%d, location=%s, hasConflict=%t",
		req.DayOfWeek, req.Location, result.HasConflict)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
