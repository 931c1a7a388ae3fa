package bulk_block

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachpoint/CP-BookingService/internal/api/middleware"
	blockSlots "github.com/coachpoint/CP-BookingService/internal/usecase/block_slots"
)

// --- Фейки зависимостей ---

type fakeUseCase struct {
	resp *blockSlots.Response
	err  error
}

func (f *fakeUseCase) ExecuteBulk(_ context.Context, _ *blockSlots.BulkRequest) (*blockSlots.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeMetrics struct{}

func (fakeMetrics) IncSlotBlocked(string) {}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, fakeMetrics{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/availability/bulk-block", bytes.NewBufferString(body))
	req.Header.Set(middleware.AdminIDHeader, "admin-1")
	rec := httptest.NewRecorder()

	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

// --- Тесты ---

func TestHandle_BlockDayResponse(t *testing.T) {
	uc := &fakeUseCase{resp: &blockSlots.Response{Action: "block", AffectedSlots: 3}}

	rec := doRequest(t, uc, `{"date":"2026-09-15","action":"block"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BulkBlockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "3 slot(s) blocked", resp.Message)
	assert.Equal(t, "2026-09-15", resp.Date)
	assert.Equal(t, "block", resp.Action)
	assert.Equal(t, int64(3), resp.AffectedSlots)
}

func TestHandle_NothingToChange(t *testing.T) {
	uc := &fakeUseCase{resp: &blockSlots.Response{Action: "unblock", AffectedSlots: 0}}

	rec := doRequest(t, uc, `{"date":"2026-09-19","action":"unblock"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BulkBlockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "no slots required changes", resp.Message)
	assert.Equal(t, int64(0), resp.AffectedSlots)
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"date":"15.09.2026","action":"block"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidAction(t *testing.T) {
	uc := &fakeUseCase{err: blockSlots.ErrInvalidAction}

	rec := doRequest(t, uc, `{"date":"2026-09-15","action":"freeze"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
