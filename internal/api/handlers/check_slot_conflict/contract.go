package check_slot_conflict

import (
	"context"

	checkSlotConflict "github.com/peycheff-com/mariia-hub-booking/internal/usecase/check_slot_conflict"
)

type CheckSlotConflictUseCase interface {
	Execute(ctx context.Context, req *checkSlotConflict.Request) (*checkSlotConflict.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
