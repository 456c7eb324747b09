package check_slot_conflict

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	"github.com/peycheff-com/mariia-hub-booking/pkg/types"
)

type fakeSlotRepo struct {
	slots []*domain.TimeSlot
}

func (f *fakeSlotRepo) ListByDayAndLocation(ctx context.Context, day domain.DayOfWeek, location domain.Location) ([]*domain.TimeSlot, error) {
	result := make([]*domain.TimeSlot, 0)
	for _, s := range f.slots {
		if s.DayOfWeek == day && s.Location == location {
			result = append(result, s)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestExecute_ReportsConflict(t *testing.T) {
	existing := &domain.TimeSlot{
		ID:        uuid.New(),
		DayOfWeek: domain.Monday,
		StartTime: mustTime(t, "09:00"),
		EndTime:   mustTime(t, "10:00"),
		Location:  domain.LocationStudio,
	}
	uc := NewUseCase(&fakeSlotRepo{slots: []*domain.TimeSlot{existing}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DayOfWeek: int(domain.Monday),
		StartTime: mustTime(t, "09:30"),
		EndTime:   mustTime(t, "10:30"),
		Location:  string(domain.LocationStudio),
	})
	require.NoError(t, err)

	assert.True(t, resp.HasConflict)
	require.Len(t, resp.ConflictingSlots, 1)
	assert.Equal(t, existing.ID, resp.ConflictingSlots[0].ID)
}

func TestExecute_NoConflictOnAbutment(t *testing.T) {
	existing := &domain.TimeSlot{
		ID:        uuid.New(),
		DayOfWeek: domain.Monday,
		StartTime: mustTime(t, "09:00"),
		EndTime:   mustTime(t, "10:00"),
		Location:  domain.LocationStudio,
	}
	uc := NewUseCase(&fakeSlotRepo{slots: []*domain.TimeSlot{existing}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DayOfWeek: int(domain.Monday),
		StartTime: mustTime(t, "10:00"),
		EndTime:   mustTime(t, "11:00"),
		Location:  string(domain.LocationStudio),
	})
	require.NoError(t, err)

	assert.False(t, resp.HasConflict)
	assert.Empty(t, resp.ConflictingSlots)
}

func TestExecute_ExcludeSlotID(t *testing.T) {
	slot := &domain.TimeSlot{
		ID:        uuid.New(),
		DayOfWeek: domain.Monday,
		StartTime: mustTime(t, "09:00"),
		EndTime:   mustTime(t, "10:00"),
		Location:  domain.LocationStudio,
	}
	uc := NewUseCase(&fakeSlotRepo{slots: []*domain.TimeSlot{slot}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DayOfWeek:     int(domain.Monday),
		StartTime:     mustTime(t, "09:00"),
		EndTime:       mustTime(t, "10:30"),
		Location:      string(domain.LocationStudio),
		ExcludeSlotID: &slot.ID,
	})
	require.NoError(t, err)

	assert.False(t, resp.HasConflict)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		DayOfWeek: 9,
		StartTime: mustTime(t, "09:00"),
		EndTime:   mustTime(t, "10:00"),
		Location:  string(domain.LocationStudio),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		DayOfWeek: int(domain.Monday),
		StartTime: mustTime(t, "10:00"),
		EndTime:   mustTime(t, "09:00"),
		Location:  string(domain.LocationStudio),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
