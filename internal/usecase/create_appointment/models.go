package create_appointment

import "time"

// Request модель запроса на запись
type Request struct {
	FirstName         string
	LastName          string
	Phone             string
	ServiceDescriptor string // услуга или госномер
	Date              string // YYYY-MM-DD
	Time              string // HH:MM
}

// Response модель ответа с созданной записью
type Response struct {
	ID                string
	FirstName         string
	LastName          string
	Phone             string
	ServiceDescriptor string
	DateTime          time.Time
	Status            string
	CancelToken       string
	ReminderSent      bool
	CreatedAt         time.Time
}
