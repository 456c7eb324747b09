package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	slotRepo "github.com/peycheff-com/mariia-hub-booking/internal/infra/storage/slot"
	"github.com/peycheff-com/mariia-hub-booking/internal/service/slots/models"
)

// Service сервис для чтения и удаления слотов расписания.
// Создание и редактирование слотов идут через отдельные use cases
// (create_slot, update_slot) — они проходят через проверку пересечений.
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// ListForDay получает слоты на день недели, отсортированные по времени начала.
// Опционально фильтрует по локации и по доступности для записи.
func (s *Service) ListForDay(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	day := domain.DayOfWeek(req.DayOfWeek)
	if !day.Valid() {
		s.logger.Warn("ListForDay: invalid day of week %d", req.DayOfWeek)
		return nil, fmt.Errorf("%w: dayOfWeek must be in 0..6", ErrInvalidInput)
	}

	var (
		slots []*domain.TimeSlot
		err   error
	)

	if req.Location != nil {
		location := domain.Location(*req.Location)
		if !location.Valid() {
			s.logger.Warn("ListForDay: unknown location %q", *req.Location)
			return nil, fmt.Errorf("%w: unknown location", ErrInvalidInput)
		}
		slots, err = s.slotRepo.ListByDayAndLocation(ctx, day, location)
	} else {
		slots, err = s.slotRepo.ListByDay(ctx, day)
	}

	if err != nil {
		s.logger.Error("ListForDay: repository error for day=%d: %v", req.DayOfWeek, err)
		return nil, fmt.Errorf("%w: ListForDay - repository error: %v", ErrInternal, err)
	}

	if req.OnlyAvailable {
		available := slots[:0]
		for _, slot := range slots {
			if slot.IsAvailable {
				available = append(available, slot)
			}
		}
		slots = available
	}

	domain.SortSlotsByStart(slots)

	s.logger.Info("ListForDay: %d slots for day=%s", len(slots), day)
	return models.FromDomainSlotList(slots), nil
}

// GetWeekSchedule возвращает недельное расписание, сгруппированное по дням
func (s *Service) GetWeekSchedule(ctx context.Context) (*models.WeekScheduleResponse, error) {
	slots, err := s.slotRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("GetWeekSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeekSchedule - repository error: %v", ErrInternal, err)
	}

	schedule := domain.NewWeekSchedule(slots)

	s.logger.Info("GetWeekSchedule: %d slots total", len(slots))
	return models.FromWeekSchedule(schedule), nil
}

// Delete удаляет слот
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%s not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: slot id=%s deleted", id)
	return nil
}
