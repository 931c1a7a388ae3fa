package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getSlots "github.com/coachpoint/CP-BookingService/internal/usecase/get_available_slots"
	"github.com/coachpoint/CP-BookingService/pkg/ptr"
	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// --- Фейки зависимостей ---

type fakeUseCase struct {
	gotReq *getSlots.Request
	resp   *getSlots.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getSlots.Request) (*getSlots.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testResponse(serviceID *int64) *getSlots.Response {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	duration := 0
	if serviceID != nil {
		duration = 60
	}
	return &getSlots.Response{
		ServiceID:       serviceID,
		DurationMinutes: duration,
		HorizonDays:     14,
		Days: []getSlots.Day{
			{
				Date:  date,
				Label: "Tuesday, 15 September 2026",
				Slots: []getSlots.Slot{
					{
						ID:          "7_2026-09-15",
						Date:        date,
						Time:        types.TimeString("10:00"),
						IsAvailable: true,
					},
				},
			},
		},
	}
}

func doRequest(t *testing.T, uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

// --- Тесты ---

func TestHandle_WithServiceID(t *testing.T) {
	uc := &fakeUseCase{resp: testResponse(ptr.Ptr(int64(42)))}

	rec := doRequest(t, uc, "/api/v1/availability?serviceId=42")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq.ServiceID)
	assert.Equal(t, int64(42), *uc.gotReq.ServiceID)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.ServiceID)
	assert.Equal(t, int64(42), *resp.ServiceID)
	assert.Equal(t, 60, resp.DurationMinutes)

	require.Len(t, resp.Days, 1)
	require.Len(t, resp.Days[0].Slots, 1)
	slot := resp.Days[0].Slots[0]
	assert.Equal(t, "2026-09-15", slot.Date)
	assert.Equal(t, "10:00", slot.Time)
	assert.Equal(t, "Tuesday, 15 September 2026", slot.FormattedDate)
	assert.Equal(t, "10:00 AM", slot.FormattedTime)
}

func TestHandle_WithoutServiceID(t *testing.T) {
	uc := &fakeUseCase{resp: testResponse(nil)}

	rec := doRequest(t, uc, "/api/v1/availability")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.gotReq.ServiceID)

	// serviceId и durationMinutes не сериализуются при выборке по всем услугам
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "serviceId")
	assert.NotContains(t, raw, "durationMinutes")
	assert.Contains(t, raw, "days")
}

func TestHandle_InvalidServiceID(t *testing.T) {
	tests := []string{"abc", "0", "-5"}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{}, "/api/v1/availability?serviceId="+raw)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_ServiceNotFound(t *testing.T) {
	uc := &fakeUseCase{err: getSlots.ErrServiceNotFound}

	rec := doRequest(t, uc, "/api/v1/availability?serviceId=99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_AfternoonTimeFormatting(t *testing.T) {
	resp := testResponse(ptr.Ptr(int64(42)))
	resp.Days[0].Slots[0].Time = types.TimeString("14:30")
	uc := &fakeUseCase{resp: resp}

	rec := doRequest(t, uc, "/api/v1/availability?serviceId=42")

	require.Equal(t, http.StatusOK, rec.Code)

	var parsed AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	assert.Equal(t, "2:30 PM", parsed.Days[0].Slots[0].FormattedTime)
}
