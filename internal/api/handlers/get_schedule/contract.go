package get_schedule

import (
	"context"

	"github.com/peycheff-com/mariia-hub-booking/internal/service/slots/models"
)

type SlotService interface {
	GetWeekSchedule(ctx context.Context) (*models.WeekScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
