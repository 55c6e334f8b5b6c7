package run_archive

import (
	"context"

	archiveAppointments "github.com/santilopez19/TurneroPremium/internal/usecase/archive_appointments"
)

type ArchiveUseCase interface {
	Execute(ctx context.Context) (*archiveAppointments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
