package check_slot_conflict

import (
	"context"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// ListByDayAndLocation получает слоты на день недели и локацию
	ListByDayAndLocation(ctx context.Context, day domain.DayOfWeek, location domain.Location) ([]*domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
