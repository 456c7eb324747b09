package update_slot

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	slotstorage "github.com/peycheff-com/mariia-hub-booking/internal/infra/storage/slot"
	"github.com/peycheff-com/mariia-hub-booking/pkg/types"
)

type fakeSlotRepo struct {
	slots   map[uuid.UUID]*domain.TimeSlot
	updated *domain.TimeSlot
}

func newFakeSlotRepo(slots ...*domain.TimeSlot) *fakeSlotRepo {
	repo := &fakeSlotRepo{slots: make(map[uuid.UUID]*domain.TimeSlot)}
	for _, s := range slots {
		repo.slots[s.ID] = s
	}
	return repo
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error) {
	slot, ok := f.slots[id]
	if !ok {
		return nil, slotstorage.ErrSlotNotFound
	}
	return slot, nil
}

func (f *fakeSlotRepo) Update(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	if _, ok := f.slots[slot.ID]; !ok {
		return nil, slotstorage.ErrSlotNotFound
	}
	out := *slot
	out.UpdatedAt = time.Now()
	f.slots[slot.ID] = &out
	f.updated = &out
	return &out, nil
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func makeSlot(t *testing.T, day domain.DayOfWeek, start, end string, location domain.Location) *domain.TimeSlot {
	t.Helper()
	return &domain.TimeSlot{
		ID:          uuid.New(),
		DayOfWeek:   day,
		StartTime:   mustTime(t, start),
		EndTime:     mustTime(t, end),
		Location:    location,
		ServiceType: domain.ServiceBeauty,
		IsAvailable: true,
	}
}

func requestFor(t *testing.T, slot *domain.TimeSlot) *Request {
	t.Helper()
	return &Request{
		SlotID:      slot.ID,
		DayOfWeek:   int(slot.DayOfWeek),
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Location:    string(slot.Location),
		ServiceType: string(slot.ServiceType),
		IsAvailable: slot.IsAvailable,
	}
}

func TestExecute_UpdatesSlot(t *testing.T) {
	slot := makeSlot(t, domain.Monday, "09:00", "10:00", domain.LocationStudio)
	repo := newFakeSlotRepo(slot)
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	req := requestFor(t, slot)
	req.EndTime = mustTime(t, "10:30")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, slot.ID, resp.ID)
	assert.Equal(t, "10:30", resp.EndTime.String())
	require.NotNil(t, repo.updated)
}

func TestExecute_SelfOverlapAllowed(t *testing.T) {
	// Слот редактируется без изменения границ: конфликта с самим собой нет
	slot := makeSlot(t, domain.Monday, "09:00", "10:00", domain.LocationStudio)
	repo := newFakeSlotRepo(slot)
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), requestFor(t, slot))
	assert.NoError(t, err)
}

func TestExecute_ConflictWithNeighbour(t *testing.T) {
	edited := makeSlot(t, domain.Monday, "09:00", "10:00", domain.LocationStudio)
	neighbour := makeSlot(t, domain.Monday, "10:00", "11:00", domain.LocationStudio)
	repo := newFakeSlotRepo(edited, neighbour)
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	// Расширение до 10:30 задевает соседний слот
	req := requestFor(t, edited)
	req.EndTime = mustTime(t, "10:30")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, repo.updated)
}

func TestExecute_MoveToOtherDayChecksTargetDay(t *testing.T) {
	edited := makeSlot(t, domain.Monday, "09:00", "10:00", domain.LocationStudio)
	tuesdaySlot := makeSlot(t, domain.Tuesday, "09:00", "10:00", domain.LocationStudio)
	repo := newFakeSlotRepo(edited, tuesdaySlot)
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	req := requestFor(t, edited)
	req.DayOfWeek = int(domain.Tuesday)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_SlotNotFound(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	req := requestFor(t, makeSlot(t, domain.Monday, "09:00", "10:00", domain.LocationStudio))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_Validation(t *testing.T) {
	slot := makeSlot(t, domain.Monday, "09:00", "10:00", domain.LocationStudio)
	uc := NewUseCase(newFakeSlotRepo(slot), fakeTxManager{}, nopLogger{})

	req := requestFor(t, slot)
	req.SlotID = uuid.Nil
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = requestFor(t, slot)
	req.StartTime = mustTime(t, "11:00")
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
