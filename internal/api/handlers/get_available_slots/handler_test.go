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

	"github.com/avtoline-dev/STO-SiteService/internal/api/handlers"
	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	getAvailableSlots "github.com/avtoline-dev/STO-SiteService/internal/usecase/get_available_slots"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func doRequest(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{
			Date: time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local),
			Slots: []domain.Slot{
				{StartTime: "09:00", DurationMinutes: 60},
				{StartTime: "10:00", DurationMinutes: 60, Busy: true},
			},
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(t, h, "/api/v1/schedule/slots?date=2026-09-02")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-02", resp.Date)
	assert.False(t, resp.Closed)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.False(t, resp.Slots[0].Busy)
	assert.True(t, resp.Slots[1].Busy)
}

func TestHandleClosedDay(t *testing.T) {
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{
			Date:   time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local),
			Closed: true,
			Slots:  []domain.Slot{},
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(t, h, "/api/v1/schedule/slots?date=2026-09-06")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestHandleMissingDate(t *testing.T) {
	h := NewHandler(&stubUseCase{}, noopLogger{})

	rec := doRequest(t, h, "/api/v1/schedule/slots")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgMissingDate, resp.Error)
}

func TestHandleInvalidDateFormat(t *testing.T) {
	h := NewHandler(&stubUseCase{}, noopLogger{})

	rec := doRequest(t, h, "/api/v1/schedule/slots?date=02.09.2026")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePastDate(t *testing.T) {
	h := NewHandler(&stubUseCase{err: getAvailableSlots.ErrDateInPast}, noopLogger{})

	rec := doRequest(t, h, "/api/v1/schedule/slots?date=2020-01-01")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgDateInPast, resp.Error)
}
