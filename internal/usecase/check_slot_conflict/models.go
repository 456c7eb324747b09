package check_slot_conflict

import (
	"github.com/google/uuid"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	"github.com/peycheff-com/mariia-hub-booking/pkg/types"
)

// Request модель запроса на проверку пересечения слота-кандидата
type Request struct {
	DayOfWeek     int              // 0 = воскресенье .. 6 = суббота
	StartTime     types.TimeString // Время начала, например "09:00"
	EndTime       types.TimeString // Время конца (правая граница не включается)
	Location      string           // Локация-ресурс
	ExcludeSlotID *uuid.UUID       // Слот, игнорируемый при проверке (редактирование самого себя)
}

// Response модель ответа с решением о пересечении
type Response struct {
	HasConflict      bool   // Есть ли пересечение с существующими слотами
	ConflictingSlots []Slot // Конкретные пересекающиеся слоты
}

// Slot модель слота в ответе проверки
type Slot struct {
	ID          uuid.UUID
	DayOfWeek   int
	StartTime   types.TimeString
	EndTime     types.TimeString
	Location    string
	ServiceType string
	IsAvailable bool
}

// fromDomainSlots конвертирует пересекающиеся слоты в модели ответа
func fromDomainSlots(slots []*domain.TimeSlot) []Slot {
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, Slot{
			ID:          s.ID,
			DayOfWeek:   int(s.DayOfWeek),
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			Location:    string(s.Location),
			ServiceType: string(s.ServiceType),
			IsAvailable: s.IsAvailable,
		})
	}
	return result
}
