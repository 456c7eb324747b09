package update_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	slotstorage "github.com/peycheff-com/mariia-hub-booking/internal/infra/storage/slot"
)

// UseCase use case редактирования слота доступности.
// При проверке пересечений сам редактируемый слот исключается из
// снапшота: неизмененные границы не конфликтуют сами с собой.
type UseCase struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет редактирование слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSlot: id=%s, day=%d, start=%s, end=%s, location=%s",
		req.SlotID, req.DayOfWeek, req.StartTime, req.EndTime, req.Location)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSlot: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.TimeSlot

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if _, err := uc.slotRepo.GetByID(ctx, req.SlotID); err != nil {
			if errors.Is(err, slotstorage.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to load slot: %v", ErrInternal, err)
		}

		// Снапшот целевого дня и локации: при переносе слота на другой
		// день проверяется именно новый день
		existing, err := uc.slotRepo.ListByDayAndLocation(ctx,
			domain.DayOfWeek(req.DayOfWeek), domain.Location(req.Location))
		if err != nil {
			return fmt.Errorf("%w: failed to load slots: %v", ErrInternal, err)
		}

		excludeID := req.SlotID
		result := domain.CheckSlotConflict(existing, domain.SlotCandidate{
			DayOfWeek: domain.DayOfWeek(req.DayOfWeek),
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Location:  domain.Location(req.Location),
		}, &excludeID)
		if result.HasConflict {
			return fmt.Errorf("%w: %d conflicting slot(s)", ErrSlotConflict, len(result.ConflictingSlots))
		}

		updated, err = uc.slotRepo.Update(ctx, toDomainSlot(req))
		if err != nil {
			switch {
			case errors.Is(err, slotstorage.ErrSlotNotFound):
				return ErrSlotNotFound
			case errors.Is(err, slotstorage.ErrSlotOverlap):
				return fmt.Errorf("%w: rejected by storage", ErrSlotConflict)
			}
			return fmt.Errorf("%w: failed to update slot: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			uc.logger.Warn("UpdateSlot: slot %s not found", req.SlotID)
		case errors.Is(err, ErrSlotConflict):
			uc.logger.Warn("UpdateSlot: conflict: %v", err)
		default:
			uc.logger.Error("UpdateSlot: failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("UpdateSlot: updated slot %s", updated.ID)
	return fromDomainSlot(updated), nil
}
