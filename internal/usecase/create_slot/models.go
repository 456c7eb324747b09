package create_slot

import (
	"time"

	"github.com/google/uuid"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	"github.com/peycheff-com/mariia-hub-booking/pkg/types"
)

// Request модель запроса на создание слота доступности
type Request struct {
	DayOfWeek   int              // 0 = воскресенье .. 6 = суббота
	StartTime   types.TimeString // Время начала, например "09:00"
	EndTime     types.TimeString // Время конца (правая граница не включается)
	Location    string           // Локация-ресурс
	ServiceType string           // Тип услуги (beauty / fitness)
	IsAvailable bool             // Доступен ли слот для бронирования
	Notes       *string          // Заметки администратора
}

// Response модель ответа с созданным слотом
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
