package update_business_config

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/santilopez19/TurneroPremium/internal/api/middleware"
	authmodels "github.com/santilopez19/TurneroPremium/internal/service/auth/models"
	"github.com/santilopez19/TurneroPremium/internal/service/businessconfig"
	"github.com/santilopez19/TurneroPremium/internal/service/businessconfig/models"
	"github.com/santilopez19/TurneroPremium/pkg/logger"
)

type stubService struct {
	err  error
	last *models.UpdateConfigRequest
}

func (s *stubService) Update(_ context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.ConfigResponse{OpenTime: "09:00", CloseTime: "18:00", SlotDurationMinutes: 30, MaxPerSlot: 2}, nil
}

func post(svc ConfigService, body string, asAdmin bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/business-config", strings.NewReader(body))
	if asAdmin {
		req = req.WithContext(middleware.WithAdmin(req.Context(), &authmodels.Principal{Email: "admin@turnero.local", Role: "admin"}))
	}

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		asAdmin    bool
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "updated",
			body:       `{"openTime":"09:00","maxPerSlot":2}`,
			asAdmin:    true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing admin",
			body:       `{}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed body",
			body:       `{`,
			asAdmin:    true,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Datos inválidos"}`,
		},
		{
			name:       "invalid config",
			body:       `{"maxPerSlot":50}`,
			asAdmin:    true,
			err:        fmt.Errorf("%w: max per slot", businessconfig.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Configuración inválida"}`,
		},
		{
			name:       "store failure",
			body:       `{}`,
			asAdmin:    true,
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Error al guardar configuración"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(&stubService{err: tt.err}, tt.body, tt.asAdmin)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_PassesPartialUpdate(t *testing.T) {
	svc := &stubService{}
	rec := post(svc, `{"maxPerSlot":3}`, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.NotNil(t, svc.last) && assert.NotNil(t, svc.last.MaxPerSlot) {
		assert.Equal(t, 3, *svc.last.MaxPerSlot)
	}
	assert.Nil(t, svc.last.OpenTime)
}
