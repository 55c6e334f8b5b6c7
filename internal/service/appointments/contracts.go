package appointments

import (
	"context"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByToken(ctx context.Context, token string) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	CancelByToken(ctx context.Context, token string) (bool, error)
	MarkReady(ctx context.Context, id string, at time.Time) error
}

// TransactionManager интерфейс для работы с транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправка сообщения клиенту в WhatsApp
type Notifier interface {
	Send(ctx context.Context, phone, body string) error
}

// EventPublisher публикует события жизненного цикла записи
type EventPublisher interface {
	Publish(ctx context.Context, event domain.AppointmentEvent) error
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
