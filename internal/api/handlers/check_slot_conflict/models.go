package check_slot_conflict

import (
	"github.com/google/uuid"

	checkSlotConflict "github.com/peycheff-com/mariia-hub-booking/internal/usecase/check_slot_conflict"
	"github.com/peycheff-com/mariia-hub-booking/pkg/types"
)

// CheckConflictRequest HTTP request model
type CheckConflictRequest struct {
	DayOfWeek     int     `json:"dayOfWeek"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Location      string  `json:"location"`
	ExcludeSlotID *string `json:"excludeSlotId,omitempty"` // Слот, игнорируемый при проверке
}

// ConflictingSlot слот, пересекающийся с кандидатом
type ConflictingSlot struct {
	ID          string `json:"id"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
	ServiceType string `json:"serviceType"`
	IsAvailable bool   `json:"isAvailable"`
}

// CheckConflictResponse HTTP response model
type CheckConflictResponse struct {
	HasConflict      bool              `json:"hasConflict"`
	ConflictingSlots []ConflictingSlot `json:"conflictingSlots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictRequest) ToUseCaseRequest() (*checkSlotConflict.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	var excludeID *uuid.UUID
	if r.ExcludeSlotID != nil {
		id, err := uuid.Parse(*r.ExcludeSlotID)
		if err != nil {
			return nil, err
		}
		excludeID = &id
	}

	return &checkSlotConflict.Request{
		DayOfWeek:     r.DayOfWeek,
		StartTime:     startTime,
		EndTime:       endTime,
		Location:      r.Location,
		ExcludeSlotID: excludeID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkSlotConflict.Response) *CheckConflictResponse {
	conflicting := make([]ConflictingSlot, 0, len(resp.ConflictingSlots))
	for _, s := range resp.ConflictingSlots {
		conflicting = append(conflicting, ConflictingSlot{
			ID:          s.ID.String(),
			DayOfWeek:   s.DayOfWeek,
			StartTime:   s.StartTime.String(),
			EndTime:     s.EndTime.String(),
			Location:    s.Location,
			ServiceType: s.ServiceType,
			IsAvailable: s.IsAvailable,
		})
	}

	return &CheckConflictResponse{
		HasConflict:      resp.HasConflict,
		ConflictingSlots: conflicting,
	}
}
