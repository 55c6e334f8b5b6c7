package archive_appointments

import (
	"context"
	"fmt"

	"github.com/santilopez19/TurneroPremium/internal/domain"
)

// UseCase перевод прошедших записей в статус done
type UseCase struct {
	appointmentRepo AppointmentRepository
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, metrics Metrics, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute архивирует все записи раньше начала сегодняшнего дня, включая отмененные
// Повторный запуск в тот же день ничего не меняет
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	before := domain.StartOfDay(uc.timeProvider.Now().In(uc.timeProvider.Location()))

	archived, err := uc.appointmentRepo.ArchivePast(ctx, before)
	if err != nil {
		uc.logger.Error("ArchiveAppointments: failed to archive before %s: %v", before.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to archive: %v", ErrInternal, err)
	}

	uc.metrics.AddArchived(archived)
	uc.logger.Info("ArchiveAppointments: archived %d appointments before %s", archived, before.Format(domain.DateFormat))

	return &Response{Archived: archived, Before: before}, nil
}
