package check_slot_conflict

import (
	"context"
	"fmt"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
)

// UseCase use case проверки слота-кандидата на пересечение с расписанием.
// Чистое решение без побочных эффектов: результат показывается админу
// до подтверждения создания/редактирования слота.
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute выполняет проверку пересечения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlotConflict: day=%d, start=%s, end=%s, location=%s, exclude=%v",
		req.DayOfWeek, req.StartTime, req.EndTime, req.Location, req.ExcludeSlotID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlotConflict: validation failed: %v", err)
		return nil, err
	}

	// Снапшот дня и локации: слоты других дней и локаций не конфликтуют
	existing, err := uc.slotRepo.ListByDayAndLocation(ctx,
		domain.DayOfWeek(req.DayOfWeek), domain.Location(req.Location))
	if err != nil {
		uc.logger.Error("CheckSlotConflict: failed to load slots: %v", err)
		return nil, fmt.Errorf("%w: failed to load slots: %v", ErrInternal, err)
	}

	result := domain.CheckSlotConflict(existing, domain.SlotCandidate{
		DayOfWeek: domain.DayOfWeek(req.DayOfWeek),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  domain.Location(req.Location),
	}, req.ExcludeSlotID)

	if result.HasConflict {
		uc.logger.Info("CheckSlotConflict: %d conflicting slot(s) found", len(result.ConflictingSlots))
	} else {
		uc.logger.Info("CheckSlotConflict: no conflict")
	}

	return &Response{
		HasConflict:      result.HasConflict,
		ConflictingSlots: fromDomainSlots(result.ConflictingSlots),
	}, nil
}
