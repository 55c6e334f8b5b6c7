package export_appointments

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/santilopez19/TurneroPremium/internal/service/appointments"
	"github.com/santilopez19/TurneroPremium/internal/service/appointments/models"
	"github.com/santilopez19/TurneroPremium/pkg/logger"
)

type stubExporter struct {
	req *models.ListRequest
	err error
}

func (s *stubExporter) Export(_ context.Context, req *models.ListRequest, w io.Writer) error {
	s.req = req
	if s.err != nil {
		_, _ = w.Write([]byte("partial"))
		return s.err
	}
	_, err := w.Write([]byte("xlsx-bytes"))
	return err
}

func TestHandler_Attachment(t *testing.T) {
	svc := &stubExporter{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec,
		httptest.NewRequest(http.MethodGet, "/api/admin/appointments/export?from=2030-03-01", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "turnos.xlsx")
	assert.Equal(t, "xlsx-bytes", rec.Body.String())
	if assert.NotNil(t, svc.req.From) {
		assert.Equal(t, "2030-03-01", *svc.req.From)
	}
	assert.Nil(t, svc.req.To)
}

func TestHandler_ErrorDoesNotLeakPartialFile(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(&stubExporter{err: appointments.ErrInvalidInput}, logger.NewNop()).Handle(rec,
		httptest.NewRequest(http.MethodGet, "/api/admin/appointments/export?from=bad", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), "partial")
}
