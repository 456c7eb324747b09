package get_slots

import (
	"context"

	"github.com/peycheff-com/mariia-hub-booking/internal/service/slots/models"
)

type SlotService interface {
	ListForDay(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
