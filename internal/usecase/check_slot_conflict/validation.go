package check_slot_conflict

import (
	"fmt"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Проверка startTime < endTime выполняется здесь: сам доменный чекер
// считает инвертированный диапазон нарушением контракта вызывающего.
func validateRequest(req *Request) error {
	if !domain.DayOfWeek(req.DayOfWeek).Valid() {
		return fmt.Errorf("%w: dayOfWeek must be in 0..6", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}

	if !domain.Location(req.Location).Valid() {
		return fmt.Errorf("%w: unknown location", ErrInvalidInput)
	}

	return nil
}
