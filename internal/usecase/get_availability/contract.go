package get_availability

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
	GetActiveDate(ctx context.Context, date string) (*domain.BlockedDate, error)
	ListActiveTimeSlots(ctx context.Context, fromDate, toDate string) ([]*domain.BlockedTimeSlot, error)
}

// ConfigProvider источник текущей конфигурации расписания (с дефолтами, если ничего не сохранено)
type ConfigProvider interface {
	Get(ctx context.Context) (*domain.BusinessConfig, error)
}

// TimeProvider интерфейс для получения текущего времени в часовом поясе бизнеса
type TimeProvider interface {
	Now() time.Time
	Location() *time.Location
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
