package update_slot

import (
	"time"

	"github.com/google/uuid"

	updateSlot "github.com/peycheff-com/mariia-hub-booking/internal/usecase/update_slot"
	"github.com/peycheff-com/mariia-hub-booking/pkg/types"
)

// UpdateSlotRequest HTTP request model.
// Полная замена состояния слота, частичных обновлений нет.
type UpdateSlotRequest struct {
	DayOfWeek   int     `json:"dayOfWeek"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Location    string  `json:"location"`
	ServiceType string  `json:"serviceType"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID          string  `json:"id"`
	DayOfWeek   int     `json:"dayOfWeek"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Location    string  `json:"location"`
	ServiceType string  `json:"serviceType"`
	IsAvailable bool    `json:"isAvailable"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateSlotRequest) ToUseCaseRequest(slotID uuid.UUID) (*updateSlot.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	isAvailable := true
	if r.IsAvailable != nil {
		isAvailable = *r.IsAvailable
	}

	return &updateSlot.Request{
		SlotID:      slotID,
		DayOfWeek:   r.DayOfWeek,
		StartTime:   startTime,
		EndTime:     endTime,
		Location:    r.Location,
		ServiceType: r.ServiceType,
		IsAvailable: isAvailable,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSlot.Response) *SlotResponse {
	return &SlotResponse{
		ID:          resp.ID.String(),
		DayOfWeek:   resp.DayOfWeek,
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Location:    resp.Location,
		ServiceType: resp.ServiceType,
		IsAvailable: resp.IsAvailable,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
