package archive_appointments

import (
	"context"
	"time"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ArchivePast(ctx context.Context, before time.Time) (int64, error)
}

// Metrics счетчик архивированных записей
type Metrics interface {
	AddArchived(n int64)
}

// TimeProvider интерфейс для получения текущего времени в часовом поясе бизнеса
type TimeProvider interface {
	Now() time.Time
	Location() *time.Location
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
