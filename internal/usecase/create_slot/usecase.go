package create_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	slotstorage "github.com/peycheff-com/mariia-hub-booking/internal/infra/storage/slot"
)

// UseCase use case создания слота доступности.
// Проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции; EXCLUDE-констрейнт в БД остается последней линией защиты.
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

// Execute выполняет создание слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSlot: day=%d, start=%s, end=%s, location=%s",
		req.DayOfWeek, req.StartTime, req.EndTime, req.Location)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSlot: validation failed: %v", err)
		return nil, err
	}

	var created *domain.TimeSlot

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// FOR UPDATE снапшот дня и локации: параллельные вставки в тот же
		// день ждут завершения транзакции
		existing, err := uc.slotRepo.ListByDayAndLocation(ctx,
			domain.DayOfWeek(req.DayOfWeek), domain.Location(req.Location))
		if err != nil {
			return fmt.Errorf("%w: failed to load slots: %v", ErrInternal, err)
		}

		result := domain.CheckSlotConflict(existing, domain.SlotCandidate{
			DayOfWeek: domain.DayOfWeek(req.DayOfWeek),
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Location:  domain.Location(req.Location),
		}, nil)
		if result.HasConflict {
			return fmt.Errorf("%w: %d conflicting slot(s)", ErrSlotConflict, len(result.ConflictingSlots))
		}

		created, err = uc.slotRepo.Create(ctx, toDomainSlot(req))
		if err != nil {
			if errors.Is(err, slotstorage.ErrSlotOverlap) {
				return fmt.Errorf("%w: rejected by storage", ErrSlotConflict)
			}
			return fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			uc.logger.Warn("CreateSlot: conflict: %v", err)
		} else {
			uc.logger.Error("CreateSlot: failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateSlot: created slot %s", created.ID)
	return fromDomainSlot(created), nil
}
