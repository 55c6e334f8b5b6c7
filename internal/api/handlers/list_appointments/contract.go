package list_appointments

import (
	"context"

	"github.com/santilopez19/TurneroPremium/internal/service/appointments/models"
)

type AppointmentLister interface {
	List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
