package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peycheff-com/mariia-hub-booking/internal/domain"
	bookingRepo "github.com/peycheff-com/mariia-hub-booking/internal/infra/storage/booking"
	"github.com/peycheff-com/mariia-hub-booking/internal/service/bookings/models"
	"github.com/peycheff-com/mariia-hub-booking/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*domain.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	out := *b
	out.ID = uuid.New()
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.bookings[out.ID] = &out
	return &out, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if !filter.IncludeCancelled && b.Status == domain.StatusCancelled && filter.Status == nil {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Location != nil && b.Location != *filter.Location {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, adminNotes *string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	if adminNotes != nil {
		b.AdminNotes = adminNotes
	}
	if status == domain.StatusCancelled {
		now := time.Now()
		b.CancelledAt = &now
	} else {
		b.CancelledAt = nil
	}
	return nil
}

// fixedTimeProvider возвращает фиксированный момент времени
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeBookingRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func validCreateRequest() *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		BookingDate: testNow.Add(48 * time.Hour),
		ServiceRef:  "lip-modeling",
		ServiceType: string(domain.ServiceBeauty),
		Location:    string(domain.LocationStudio),
		ClientName:  "Anna Kowalska",
		ClientEmail: "anna@example.com",
		AmountPaid:  250,
	}
}

func TestCreate_Defaults(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Новое бронирование всегда pending, валюта по умолчанию PLN
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.DefaultCurrency, resp.Currency)
	assert.NotEmpty(t, resp.ID)
}

func TestCreate_ExplicitCurrency(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	req := validCreateRequest()
	req.Currency = "eur"

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "EUR", resp.Currency)
}

func TestCreate_UnsupportedCurrency(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	req := validCreateRequest()
	req.Currency = "GBP"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestCreate_PastDate(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	req := validCreateRequest()
	req.BookingDate = testNow.Add(-time.Hour)

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidBookingDate)
}

func TestCreate_TooLate(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	req := validCreateRequest()
	req.BookingDate = testNow.Add(30 * time.Minute)

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	tests := []struct {
		name   string
		mutate func(*models.CreateBookingRequest)
	}{
		{"missing serviceRef", func(r *models.CreateBookingRequest) { r.ServiceRef = "" }},
		{"unknown serviceType", func(r *models.CreateBookingRequest) { r.ServiceType = "magic" }},
		{"unknown location", func(r *models.CreateBookingRequest) { r.Location = "garage" }},
		{"missing clientName", func(r *models.CreateBookingRequest) { r.ClientName = "  " }},
		{"invalid email", func(r *models.CreateBookingRequest) { r.ClientEmail = "not-an-email" }},
		{"negative amount", func(r *models.CreateBookingRequest) { r.AmountPaid = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	resp, err := svc.UpdateStatus(context.Background(), id, &models.UpdateStatusRequest{
		Status:     string(domain.StatusCancelled),
		AdminNotes: ptr.Ptr("client no-show"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.NotNil(t, resp.CancelledAt)
	require.NotNil(t, resp.AdminNotes)
	assert.Equal(t, "client no-show", *resp.AdminNotes)

	// Переходы не ограничены: отмененное можно вернуть в pending
	resp, err = svc.UpdateStatus(context.Background(), id, &models.UpdateStatusRequest{
		Status: string(domain.StatusPending),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Nil(t, resp.CancelledAt)
}

func TestUpdateStatus_Invalid(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), &models.UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), uuid.New(), &models.UpdateStatusRequest{
		Status: string(domain.StatusConfirmed),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCalendar(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo)

	req := validCreateRequest()
	req.BookingDate = testNow.Add(48 * time.Hour)
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	req = validCreateRequest()
	req.BookingDate = testNow.Add(50 * time.Hour)
	_, err = svc.Create(context.Background(), req)
	require.NoError(t, err)

	start := testNow
	end := testNow.Add(96 * time.Hour)

	resp, err := svc.Calendar(context.Background(), start, end)
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	assert.Equal(t, 2, resp.Days[0].Total)
	assert.Equal(t, 2, resp.Days[0].ByStatus[string(domain.StatusPending)])
}

func TestCalendar_InvalidRange(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	_, err := svc.Calendar(context.Background(), testNow, testNow.Add(-24*time.Hour))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
