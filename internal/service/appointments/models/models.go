package models

import (
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
)

// Request модели

// ListRequest диапазон выборки записей для администратора
// From и To в формате YYYY-MM-DD, To включительно; Status опционален
type ListRequest struct {
	From   *string `json:"from,omitempty"`
	To     *string `json:"to,omitempty"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// PublicAppointmentResponse данные записи, которые видит клиент по ссылке отмены
type PublicAppointmentResponse struct {
	ID                string    `json:"id"`
	DateTime          time.Time `json:"dateTime"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	ServiceDescriptor string    `json:"serviceDescriptor"`
	Phone             string    `json:"phone"`
	Status            string    `json:"status"`
}

// AppointmentResponse запись в административном списке
type AppointmentResponse struct {
	ID                string     `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Phone             string     `json:"phone"`
	ServiceDescriptor string     `json:"serviceDescriptor"`
	DateTime          time.Time  `json:"dateTime"`
	Status            string     `json:"status"`
	ReminderSent      bool       `json:"reminderSent"`
	ReminderSentAt    *time.Time `json:"reminderSentAt,omitempty"`
	ReadyAt           *time.Time `json:"readyAt,omitempty"`
	Attended          bool       `json:"attended"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainPublic конвертирует domain модель в публичный DTO
func FromDomainPublic(a *domain.Appointment) *PublicAppointmentResponse {
	if a == nil {
		return nil
	}

	return &PublicAppointmentResponse{
		ID:                a.ID,
		DateTime:          a.DateTime,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		ServiceDescriptor: a.ServiceDescriptor,
		Phone:             a.Phone,
		Status:            string(a.Status),
	}
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                a.ID,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		Phone:             a.Phone,
		ServiceDescriptor: a.ServiceDescriptor,
		DateTime:          a.DateTime,
		Status:            string(a.Status),
		ReminderSent:      a.ReminderSent,
		ReminderSentAt:    a.ReminderSentAt,
		ReadyAt:           a.ReadyAt,
		Attended:          a.Attended,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
	}

	for _, a := range list {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}
