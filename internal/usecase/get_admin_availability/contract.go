package get_admin_availability

import (
	"context"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListActiveOnDates(ctx context.Context, fromDate, toDate string) ([]*domain.Appointment, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	ListActiveDates(ctx context.Context, fromDate, toDate string) ([]*domain.BlockedDate, error)
	ListActiveTimeSlots(ctx context.Context, fromDate, toDate string) ([]*domain.BlockedTimeSlot, error)
}

// ConfigProvider источник текущей конфигурации расписания
type ConfigProvider interface {
	Get(ctx context.Context) (*domain.BusinessConfig, error)
}

// TransactionManager интерфейс для чтения в одной транзакции
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения часового пояса бизнеса
type TimeProvider interface {
	Location() *time.Location
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
