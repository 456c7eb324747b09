package update_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("update_slot: slot not found")

	// ErrSlotConflict возвращается, когда новые границы пересекаются
	// с другим слотом на том же дне недели и локации
	ErrSlotConflict = errors.New("update_slot: slot conflicts with an existing slot")

	// ErrInvalidTimeRange возвращается, когда startTime >= endTime
	ErrInvalidTimeRange = errors.New("update_slot: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_slot: internal error")
)
