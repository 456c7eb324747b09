package create_slot

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createSlot "github.com/peycheff-com/mariia-hub-booking/internal/usecase/create_slot"
)

type fakeUseCase struct {
	resp *createSlot.Response
	err  error
	got  *createSlot.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createSlot.Request) (*createSlot.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/slots", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createSlot.Response{
		ID:          uuid.New(),
		DayOfWeek:   1,
		StartTime:   "09:00",
		EndTime:     "10:00",
		Location:    "studio",
		ServiceType: "beauty",
		IsAvailable: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, CreateSlotRequest{
		DayOfWeek:   1,
		StartTime:   "09:00",
		EndTime:     "10:00",
		Location:    "studio",
		ServiceType: "beauty",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp SlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "09:00", resp.StartTime)
	assert.True(t, resp.IsAvailable)

	// isAvailable не прислан — по умолчанию true
	require.NotNil(t, uc.got)
	assert.True(t, uc.got.IsAvailable)
}

func TestHandle_Conflict(t *testing.T) {
	uc := &fakeUseCase{err: createSlot.ErrSlotConflict}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, CreateSlotRequest{
		DayOfWeek:   1,
		StartTime:   "09:00",
		EndTime:     "10:00",
		Location:    "studio",
		ServiceType: "beauty",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_BadTime(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, h, CreateSlotRequest{
		DayOfWeek:   1,
		StartTime:   "garbage",
		EndTime:     "10:00",
		Location:    "studio",
		ServiceType: "beauty",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/slots", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createSlot.ErrInternal}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, CreateSlotRequest{
		DayOfWeek:   1,
		StartTime:   "09:00",
		EndTime:     "10:00",
		Location:    "studio",
		ServiceType: "beauty",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
