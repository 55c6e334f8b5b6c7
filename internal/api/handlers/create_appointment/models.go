package create_appointment

import (
	"time"

	createAppointment "github.com/santilopez19/TurneroPremium/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Phone             string `json:"phone"`
	ServiceDescriptor string `json:"serviceDescriptor"`
	Service           string `json:"service"` // старое имя поля, принимается как синоним
	Date              string `json:"date"`    // "2025-10-15"
	Time              string `json:"time"`    // "10:00"
}

// AppointmentResponse HTTP response model
// Токен отмены отдается только здесь, один раз, самому клиенту
type AppointmentResponse struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Phone             string    `json:"phone"`
	ServiceDescriptor string    `json:"serviceDescriptor"`
	DateTime          time.Time `json:"dateTime"`
	Status            string    `json:"status"`
	CancelToken       string    `json:"cancelToken"`
	ReminderSent      bool      `json:"reminderSent"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	descriptor := r.ServiceDescriptor
	if descriptor == "" {
		descriptor = r.Service
	}

	return &createAppointment.Request{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Phone:             r.Phone,
		ServiceDescriptor: descriptor,
		Date:              r.Date,
		Time:              r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                resp.ID,
		FirstName:         resp.FirstName,
		LastName:          resp.LastName,
		Phone:             resp.Phone,
		ServiceDescriptor: resp.ServiceDescriptor,
		DateTime:          resp.DateTime,
		Status:            resp.Status,
		CancelToken:       resp.CancelToken,
		ReminderSent:      resp.ReminderSent,
		CreatedAt:         resp.CreatedAt,
	}
}
