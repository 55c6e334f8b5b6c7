package export_appointments

import (
	"context"
	"io"

	"github.com/santilopez19/TurneroPremium/internal/service/appointments/models"
)

type AppointmentExporter interface {
	Export(ctx context.Context, req *models.ListRequest, w io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
