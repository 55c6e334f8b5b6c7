package cancel_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/internal/service/appointments"
	"github.com/santilopez19/TurneroPremium/internal/service/appointments/models"
	"github.com/santilopez19/TurneroPremium/pkg/logger"
)

type stubCanceler struct {
	token string
	err   error
}

func (s *stubCanceler) CancelByToken(_ context.Context, token string) (*models.PublicAppointmentResponse, error) {
	s.token = token
	if s.err != nil {
		return nil, s.err
	}
	return &models.PublicAppointmentResponse{ID: "a1", Status: string(domain.StatusCanceled)}, nil
}

func route(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/appointments/cancel/{token}", h.Handle).Methods(http.MethodPost)
	return r
}

func TestHandler_Cancel(t *testing.T) {
	svc := &stubCanceler{}
	rec := httptest.NewRecorder()

	route(NewHandler(svc, logger.NewNop())).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/api/appointments/cancel/abc123", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", svc.token)
	assert.Contains(t, rec.Body.String(), `"status":"canceled"`)
}

func TestHandler_UnknownToken(t *testing.T) {
	rec := httptest.NewRecorder()

	route(NewHandler(&stubCanceler{err: appointments.ErrAppointmentNotFound}, logger.NewNop())).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/api/appointments/cancel/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Enlace inválido"}`, rec.Body.String())
}
