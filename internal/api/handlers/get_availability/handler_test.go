package get_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/santilopez19/TurneroPremium/internal/usecase/get_availability"
	"github.com/santilopez19/TurneroPremium/pkg/logger"
	"github.com/santilopez19/TurneroPremium/pkg/types"
)

type stubUseCase struct {
	date string
	resp *getAvailability.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	s.date = req.Date
	return s.resp, s.err
}

func TestHandler_Slots(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailability.Response{
		Date:  "2030-03-04",
		Slots: []types.TimeString{"09:00", "09:30"},
	}}
	rec := httptest.NewRecorder()

	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/availability?date=2030-03-04", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2030-03-04", uc.date)
	assert.JSONEq(t, `{"date":"2030-03-04","slots":["09:00","09:30"],"blocked":false}`, rec.Body.String())
}

func TestHandler_BlockedDayHasEmptySlotsAndReason(t *testing.T) {
	reason := "Feriado"
	uc := &stubUseCase{resp: &getAvailability.Response{Date: "2030-03-04", Blocked: true, Reason: &reason}}
	rec := httptest.NewRecorder()

	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/availability?date=2030-03-04", nil))

	assert.JSONEq(t, `{"date":"2030-03-04","slots":[],"blocked":true,"reason":"Feriado"}`, rec.Body.String())
}

func TestHandler_InvalidDate(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(&stubUseCase{err: getAvailability.ErrInvalidDate}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/availability?date=mañana", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
