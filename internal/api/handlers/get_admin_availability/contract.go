package get_admin_availability

import (
	"context"

	getAdminAvailability "github.com/santilopez19/TurneroPremium/internal/usecase/get_admin_availability"
)

type AdminAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAdminAvailability.Request) (*getAdminAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
