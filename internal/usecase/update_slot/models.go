package update_slot

import (
	"time"

	"github.com/google/uuid"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	"github.com/peycheff-com/mariia-hub-booking/pkg/types"
)

// Request модель запроса на редактирование слота.
// Все поля кроме SlotID обязательны: клиент присылает полное новое
// состояние слота, частичных обновлений нет.
type Request struct {
	SlotID      uuid.UUID        // Идентификатор редактируемого слота
	DayOfWeek   int              // 0 = воскресенье .. 6 = суббота
	StartTime   types.TimeString // Новое время начала
	EndTime     types.TimeString // Новое время конца (правая граница не включается)
	Location    string           // Новая локация
	ServiceType string           // Тип услуги (beauty / fitness)
	IsAvailable bool             // Доступен ли слот для бронирования
	Notes       *string          // Заметки администратора
}

// Response модель ответа с обновленным слотом
type Response struct {
	ID          uuid.UUID
	DayOfWeek   int
	StartTime   types.TimeString
	EndTime     types.TimeString
	Location    string
	ServiceType string
	IsAvailable bool
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// toDomainSlot конвертирует запрос в доменную модель слота
func toDomainSlot(req *Request) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:          req.SlotID,
		DayOfWeek:   domain.DayOfWeek(req.DayOfWeek),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    domain.Location(req.Location),
		ServiceType: domain.ServiceType(req.ServiceType),
		IsAvailable: req.IsAvailable,
		Notes:       req.Notes,
	}
}

// fromDomainSlot конвертирует доменную модель в модель ответа
func fromDomainSlot(slot *domain.TimeSlot) *Response {
	return &Response{
		ID:          slot.ID,
		DayOfWeek:   int(slot.DayOfWeek),
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Location:    string(slot.Location),
		ServiceType: string(slot.ServiceType),
		IsAvailable: slot.IsAvailable,
		Notes:       slot.Notes,
		CreatedAt:   slot.CreatedAt,
		UpdatedAt:   slot.UpdatedAt,
	}
}
