package get_appointment_by_token

import (
	"context"

	"github.com/santilopez19/TurneroPremium/internal/service/appointments/models"
)

type AppointmentGetter interface {
	GetByToken(ctx context.Context, token string) (*models.PublicAppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
