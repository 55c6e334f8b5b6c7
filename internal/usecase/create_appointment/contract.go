package create_appointment

import (
	"context"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/internal/usecase/get_availability"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	ListActiveAt(ctx context.Context, dateTime time.Time) ([]*domain.Appointment, error)
	ListActiveByPhoneOnDate(ctx context.Context, phone, localDate string) ([]*domain.Appointment, error)
}

// AvailabilityResolver расчет свободных слотов на дату
type AvailabilityResolver interface {
	Execute(ctx context.Context, req *get_availability.Request) (*get_availability.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикует события жизненного цикла записи
type EventPublisher interface {
	Publish(ctx context.Context, event domain.AppointmentEvent) error
}

// Metrics счетчики результатов бронирования
type Metrics interface {
	IncAppointment(result string)
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
