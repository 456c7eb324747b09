package create_slot

import (
	"time"

	createSlot "github.com/peycheff-com/mariia-hub-booking/internal/usecase/create_slot"
	"github.com/peycheff-com/mariia-hub-booking/pkg/types"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	DayOfWeek   int     `json:"dayOfWeek"`   // 0 = Sunday .. 6 = Saturday
	StartTime   string  `json:"startTime"`   // "09:00"
	EndTime     string  `json:"endTime"`     // "10:30", right boundary excluded
	Location    string  `json:"location"`    // studio / online / fitness-location
	ServiceType string  `json:"serviceType"` // beauty / fitness
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
func (r *CreateSlotRequest) ToUseCaseRequest() (*createSlot.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	// Слот считается открытым для записи, если клиент не сказал иного
	isAvailable := true
	if r.IsAvailable != nil {
		isAvailable = *r.IsAvailable
	}

	return &createSlot.Request{
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
func FromUseCaseResponse(resp *createSlot.Response) *SlotResponse {
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
