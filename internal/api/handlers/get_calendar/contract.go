package get_calendar

import (
	"context"
	"time"

	"github.com/peycheff-com/mariia-hub-booking/internal/service/bookings/models"
)

type BookingService interface {
	Calendar(ctx context.Context, start, end time.Time) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
