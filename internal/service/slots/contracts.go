package slots

import (
	"context"

	"github.com/google/uuid"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error)
	ListByDay(ctx context.Context, day domain.DayOfWeek) ([]*domain.TimeSlot, error)
	ListByDayAndLocation(ctx context.Context, day domain.DayOfWeek, location domain.Location) ([]*domain.TimeSlot, error)
	ListAll(ctx context.Context) ([]*domain.TimeSlot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
