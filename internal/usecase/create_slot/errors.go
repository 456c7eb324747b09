package create_slot

import "errors"

var (
	// ErrSlotConflict возвращается, когда кандидат пересекается с существующим
	// слотом на том же дне недели и локации
	ErrSlotConflict = errors.New("create_slot: slot conflicts with an existing slot")

	// ErrInvalidTimeRange возвращается, когда startTime >= endTime
	ErrInvalidTimeRange = errors.New("create_slot: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_slot: internal error")
)
