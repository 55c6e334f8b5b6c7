package mark_ready

import (
	"context"

	"github.com/santilopez19/TurneroPremium/internal/service/appointments/models"
)

type ReadyMarker interface {
	MarkReady(ctx context.Context, id string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
