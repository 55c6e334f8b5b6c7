package domain

import "time"

// AppointmentEventType тип события жизненного цикла записи
type AppointmentEventType string

const (
	EventAppointmentBooked   AppointmentEventType = "appointment.booked"
	EventAppointmentCanceled AppointmentEventType = "appointment.canceled"
	EventAppointmentReady    AppointmentEventType = "appointment.ready"
)

// AppointmentEvent событие для внешних подписчиков
type AppointmentEvent struct {
	Type          AppointmentEventType
	AppointmentID string
	Status        AppointmentStatus
	DateTime      time.Time
	OccurredAt    time.Time
}

// NewAppointmentEvent собирает событие по записи
func NewAppointmentEvent(t AppointmentEventType, a *Appointment, at time.Time) AppointmentEvent {
	return AppointmentEvent{
		Type:          t,
		AppointmentID: a.ID,
		Status:        a.Status,
		DateTime:      a.DateTime,
		OccurredAt:    at,
	}
}
