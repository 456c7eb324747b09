package models

import (
	"time"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
)

// Request модели

// ListSlotsRequest запрос на получение слотов на день недели
type ListSlotsRequest struct {
	DayOfWeek     int     `json:"dayOfWeek"`               // 0 = воскресенье .. 6 = суббота
	Location      *string `json:"location,omitempty"`      // Фильтр по локации (опционально)
	OnlyAvailable bool    `json:"onlyAvailable,omitempty"` // Только слоты, открытые для записи
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID          string  `json:"id"`
	DayOfWeek   int     `json:"dayOfWeek"`
	StartTime   string  `json:"startTime"` // "09:00"
	EndTime     string  `json:"endTime"`   // "10:30"
	Location    string  `json:"location"`
	ServiceType string  `json:"serviceType"`
	IsAvailable bool    `json:"isAvailable"`
	Notes       *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// DayScheduleResponse слоты одного дня недели
type DayScheduleResponse struct {
	DayOfWeek int            `json:"dayOfWeek"`
	Slots     []SlotResponse `json:"slots"`
}

// WeekScheduleResponse недельное расписание, сгруппированное по дням
type WeekScheduleResponse struct {
	Days []DayScheduleResponse `json:"days"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.TimeSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:          s.ID.String(),
		DayOfWeek:   int(s.DayOfWeek),
		StartTime:   s.StartTime.String(),
		EndTime:     s.EndTime.String(),
		Location:    string(s.Location),
		ServiceType: string(s.ServiceType),
		IsAvailable: s.IsAvailable,
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.TimeSlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		if slotResp := FromDomainSlot(slot); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}

// FromWeekSchedule конвертирует недельное расписание в DTO.
// Дни идут подряд от воскресенья до субботы, слоты внутри дня
// отсортированы по времени начала.
func FromWeekSchedule(schedule *domain.WeekSchedule) *WeekScheduleResponse {
	resp := &WeekScheduleResponse{
		Days: make([]DayScheduleResponse, 0, 7),
	}

	for day := domain.Sunday; day <= domain.Saturday; day++ {
		slots := schedule.SlotsForDay(day)
		domain.SortSlotsByStart(slots)

		resp.Days = append(resp.Days, DayScheduleResponse{
			DayOfWeek: int(day),
			Slots:     FromDomainSlotList(slots).Slots,
		})
	}

	return resp
}
