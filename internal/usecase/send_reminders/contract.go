package send_reminders

import (
	"context"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListDueForReminder(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	MarkReminderSent(ctx context.Context, id string, at time.Time) (bool, error)
}

// Notifier отправка сообщения клиенту
type Notifier interface {
	Send(ctx context.Context, phone, body string) error
}

// Metrics счетчики отправленных напоминаний
type Metrics interface {
	AddReminders(sent, failed int)
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
