package create_slot

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	"github.com/peycheff-com/mariia-hub-booking/pkg/types"
)

type fakeSlotRepo struct {
	slots     []*domain.TimeSlot
	createErr error
	created   *domain.TimeSlot
}

func (f *fakeSlotRepo) Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *slot
	out.ID = uuid.New()
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
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

// fakeTxManager выполняет fn без транзакции
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

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		DayOfWeek:   int(domain.Monday),
		StartTime:   mustTime(t, "09:00"),
		EndTime:     mustTime(t, "10:00"),
		Location:    string(domain.LocationStudio),
		ServiceType: string(domain.ServiceBeauty),
		IsAvailable: true,
	}
}

func TestExecute_CreatesSlot(t *testing.T) {
	repo := &fakeSlotRepo{}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, int(domain.Monday), resp.DayOfWeek)
	assert.Equal(t, "09:00", resp.StartTime.String())
	assert.Equal(t, "10:00", resp.EndTime.String())
	assert.True(t, resp.IsAvailable)
	require.NotNil(t, repo.created)
}

func TestExecute_RejectsConflict(t *testing.T) {
	existing := &domain.TimeSlot{
		ID:        uuid.New(),
		DayOfWeek: domain.Monday,
		StartTime: mustTime(t, "09:30"),
		EndTime:   mustTime(t, "10:30"),
		Location:  domain.LocationStudio,
	}
	repo := &fakeSlotRepo{slots: []*domain.TimeSlot{existing}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, repo.created)
}

func TestExecute_AllowsAbutment(t *testing.T) {
	existing := &domain.TimeSlot{
		ID:        uuid.New(),
		DayOfWeek: domain.Monday,
		StartTime: mustTime(t, "10:00"),
		EndTime:   mustTime(t, "11:00"),
		Location:  domain.LocationStudio,
	}
	repo := &fakeSlotRepo{slots: []*domain.TimeSlot{existing}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	// [09:00, 10:00) примыкает к [10:00, 11:00) — не конфликт
	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.NoError(t, err)
}

func TestExecute_AllowsSameTimeOtherLocation(t *testing.T) {
	existing := &domain.TimeSlot{
		ID:        uuid.New(),
		DayOfWeek: domain.Monday,
		StartTime: mustTime(t, "09:00"),
		EndTime:   mustTime(t, "10:00"),
		Location:  domain.LocationOnline,
	}
	repo := &fakeSlotRepo{slots: []*domain.TimeSlot{existing}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"invalid day", func(r *Request) { r.DayOfWeek = 7 }, ErrInvalidInput},
		{"negative day", func(r *Request) { r.DayOfWeek = -1 }, ErrInvalidInput},
		{"missing start", func(r *Request) { r.StartTime = "" }, ErrInvalidInput},
		{"missing end", func(r *Request) { r.EndTime = "" }, ErrInvalidInput},
		{"inverted range", func(r *Request) { r.StartTime = mustTime(t, "11:00") }, ErrInvalidTimeRange},
		{"zero-length range", func(r *Request) { r.StartTime = mustTime(t, "10:00") }, ErrInvalidTimeRange},
		{"unknown location", func(r *Request) { r.Location = "garage" }, ErrInvalidInput},
		{"unknown service type", func(r *Request) { r.ServiceType = "magic" }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
