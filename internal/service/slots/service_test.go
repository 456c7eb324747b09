package slots

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	slotRepository "github.com/peycheff-com/mariia-hub-booking/internal/infra/storage/slot"
	"github.com/peycheff-com/mariia-hub-booking/internal/service/slots/models"
	"github.com/peycheff-com/mariia-hub-booking/pkg/ptr"
	"github.com/peycheff-com/mariia-hub-booking/pkg/types"
)

type fakeSlotRepo struct {
	slots []*domain.TimeSlot
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error) {
	for _, s := range f.slots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, slotRepository.ErrSlotNotFound
}

func (f *fakeSlotRepo) ListByDay(ctx context.Context, day domain.DayOfWeek) ([]*domain.TimeSlot, error) {
	result := make([]*domain.TimeSlot, 0)
	for _, s := range f.slots {
		if s.DayOfWeek == day {
			result = append(result, s)
		}
	}
	return result, nil
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

func (f *fakeSlotRepo) ListAll(ctx context.Context) ([]*domain.TimeSlot, error) {
	return f.slots, nil
}

func (f *fakeSlotRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, s := range f.slots {
		if s.ID == id {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			return nil
		}
	}
	return slotRepository.ErrSlotNotFound
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

func makeSlot(t *testing.T, day domain.DayOfWeek, start, end string, location domain.Location, available bool) *domain.TimeSlot {
	t.Helper()
	return &domain.TimeSlot{
		ID:          uuid.New(),
		DayOfWeek:   day,
		StartTime:   mustTime(t, start),
		EndTime:     mustTime(t, end),
		Location:    location,
		ServiceType: domain.ServiceBeauty,
		IsAvailable: available,
	}
}

func TestListForDay_SortedByStart(t *testing.T) {
	late := makeSlot(t, domain.Monday, "15:00", "16:00", domain.LocationStudio, true)
	early := makeSlot(t, domain.Monday, "08:00", "09:00", domain.LocationStudio, true)
	otherDay := makeSlot(t, domain.Tuesday, "08:00", "09:00", domain.LocationStudio, true)

	svc := NewService(&fakeSlotRepo{slots: []*domain.TimeSlot{late, early, otherDay}}, nopLogger{})

	resp, err := svc.ListForDay(context.Background(), &models.ListSlotsRequest{DayOfWeek: int(domain.Monday)})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, early.ID.String(), resp.Slots[0].ID)
	assert.Equal(t, late.ID.String(), resp.Slots[1].ID)
}

func TestListForDay_LocationFilter(t *testing.T) {
	studio := makeSlot(t, domain.Monday, "09:00", "10:00", domain.LocationStudio, true)
	online := makeSlot(t, domain.Monday, "09:00", "10:00", domain.LocationOnline, true)

	svc := NewService(&fakeSlotRepo{slots: []*domain.TimeSlot{studio, online}}, nopLogger{})

	resp, err := svc.ListForDay(context.Background(), &models.ListSlotsRequest{
		DayOfWeek: int(domain.Monday),
		Location:  ptr.Ptr(string(domain.LocationOnline)),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, online.ID.String(), resp.Slots[0].ID)
}

func TestListForDay_OnlyAvailable(t *testing.T) {
	open := makeSlot(t, domain.Monday, "09:00", "10:00", domain.LocationStudio, true)
	closed := makeSlot(t, domain.Monday, "11:00", "12:00", domain.LocationStudio, false)

	svc := NewService(&fakeSlotRepo{slots: []*domain.TimeSlot{open, closed}}, nopLogger{})

	resp, err := svc.ListForDay(context.Background(), &models.ListSlotsRequest{
		DayOfWeek:     int(domain.Monday),
		OnlyAvailable: true,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, open.ID.String(), resp.Slots[0].ID)
}

func TestListForDay_InvalidInput(t *testing.T) {
	svc := NewService(&fakeSlotRepo{}, nopLogger{})

	_, err := svc.ListForDay(context.Background(), &models.ListSlotsRequest{DayOfWeek: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListForDay(context.Background(), &models.ListSlotsRequest{
		DayOfWeek: int(domain.Monday),
		Location:  ptr.Ptr("garage"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetWeekSchedule(t *testing.T) {
	monday := makeSlot(t, domain.Monday, "09:00", "10:00", domain.LocationStudio, true)
	saturday := makeSlot(t, domain.Saturday, "11:00", "12:00", domain.LocationFitness, true)

	svc := NewService(&fakeSlotRepo{slots: []*domain.TimeSlot{monday, saturday}}, nopLogger{})

	resp, err := svc.GetWeekSchedule(context.Background())
	require.NoError(t, err)

	// Все семь дней присутствуют, от воскресенья до субботы
	require.Len(t, resp.Days, 7)
	assert.Equal(t, int(domain.Sunday), resp.Days[0].DayOfWeek)
	assert.Empty(t, resp.Days[0].Slots)
	assert.Len(t, resp.Days[int(domain.Monday)].Slots, 1)
	assert.Len(t, resp.Days[int(domain.Saturday)].Slots, 1)
}

func TestDelete(t *testing.T) {
	slot := makeSlot(t, domain.Monday, "09:00", "10:00", domain.LocationStudio, true)
	repo := &fakeSlotRepo{slots: []*domain.TimeSlot{slot}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), slot.ID))
	assert.Empty(t, repo.slots)

	assert.ErrorIs(t, svc.Delete(context.Background(), slot.ID), ErrSlotNotFound)
}

func TestGetByID(t *testing.T) {
	slot := makeSlot(t, domain.Monday, "09:00", "10:00", domain.LocationStudio, true)
	svc := NewService(&fakeSlotRepo{slots: []*domain.TimeSlot{slot}}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.Equal(t, slot.ID.String(), resp.ID)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
