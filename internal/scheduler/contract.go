package scheduler

import (
	"context"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/usecase/archive_appointments"
	"github.com/santilopez19/TurneroPremium/internal/usecase/send_reminders"
)

// ReminderJob проход рассылки напоминаний
type ReminderJob interface {
	Execute(ctx context.Context) (*send_reminders.Response, error)
}

// ArchiveJob проход архивации
type ArchiveJob interface {
	Execute(ctx context.Context) (*archive_appointments.Response, error)
}

// Locker не дает нескольким репликам выполнять один проход одновременно
type Locker interface {
	TryLock(ctx context.Context, name string, ttl time.Duration) (release func(), ok bool, err error)
}

// TimeProvider интерфейс для получения текущего времени в часовом поясе бизнеса
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
