package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/santilopez19/TurneroPremium/internal/usecase/create_appointment"
	"github.com/santilopez19/TurneroPremium/pkg/logger"
)

type stubUseCase struct {
	req  *createAppointment.Request
	resp *createAppointment.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	s.req = req
	return s.resp, s.err
}

const validBody = `{"firstName":"Ana","lastName":"Pérez","phone":"+5491122334455","service":"Corte","date":"2030-03-04","time":"10:30"}`

func TestHandler_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createAppointment.Response{
		ID:          "5f0c6a52-6a4e-4c1a-9f59-9f7a0c2b8d11",
		FirstName:   "Ana",
		DateTime:    time.Date(2030, 3, 4, 10, 30, 0, 0, time.UTC),
		Status:      "booked",
		CancelToken: "tok",
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(validBody)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Corte", uc.req.ServiceDescriptor, "legacy service field is accepted")
	assert.Equal(t, "10:30", uc.req.Time)

	var body AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "tok", body.CancelToken)
	assert.Equal(t, "booked", body.Status)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: phone", createAppointment.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "slot unavailable", err: createAppointment.ErrSlotUnavailable, want: http.StatusConflict},
		{name: "daily limit", err: createAppointment.ErrDailyLimitExceeded, want: http.StatusConflict},
		{name: "internal", err: createAppointment.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(validBody)))

			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestHandler_MalformedBody(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(`{`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.req)
}
