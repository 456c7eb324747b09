package delete_slot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/peycheff-com/mariia-hub-booking/internal/api/handlers"
	slotsService "github.com/peycheff-com/mariia-hub-booking/internal/service/slots"
)

const (
	msgInvalidSlotID = "invalid slot id"
	msgSlotNotFound  = "slot not found"
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

// Handle DELETE /api/v1/admin/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(mux.Vars(r)["slotId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/slots/{slotId} - Invalid slot id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), slotID); err != nil {
		if errors.Is(err, slotsService.ErrSlotNotFound) {
			h.logger.Warn("DELETE /admin/slots/{slotId} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("DELETE /admin/slots/{slotId} - Failed to delete slot: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/slots/{slotId} - Slot deleted: slot_id=%s", slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
