package events

import (
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// AppointmentEventMessage тело сообщения в топике
type AppointmentEventMessage struct {
	Type          string    `json:"type"`
	AppointmentID string    `json:"appointmentId"`
	Status        string    `json:"status"`
	DateTime      time.Time `json:"dateTime"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func fromDomainEvent(e domain.AppointmentEvent) AppointmentEventMessage {
	return AppointmentEventMessage{
		Type:          string(e.Type),
		AppointmentID: e.AppointmentID,
		Status:        string(e.Status),
		DateTime:      e.DateTime,
		OccurredAt:    e.OccurredAt,
	}
}
