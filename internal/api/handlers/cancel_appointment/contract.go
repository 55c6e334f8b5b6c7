package cancel_appointment

import (
	"context"

	"github.com/santilopez19/TurneroPremium/internal/service/appointments/models"
)

type AppointmentCanceler interface {
	CancelByToken(ctx context.Context, token string) (*models.PublicAppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
