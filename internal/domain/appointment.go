package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusBooked   AppointmentStatus = "booked"
	StatusReady    AppointmentStatus = "ready"
	StatusCanceled AppointmentStatus = "canceled"
	StatusDone     AppointmentStatus = "done"
)

// Appointment запись клиента на слот
type Appointment struct {
	ID                string
	FirstName         string
	LastName          string
	Phone             string
	ServiceDescriptor string // услуга или госномер, в зависимости от инсталляции
	DateTime          time.Time
	LocalDate         string // календарная дата DateTime в часовом поясе бизнеса (YYYY-MM-DD)
	Status            AppointmentStatus
	CancelToken       string
	ReminderSent      bool
	ReminderSentAt    *time.Time
	ReadyAt           *time.Time
	Attended          bool

	// Номер места в слоте (1..maxPerSlot) и номер записи телефона за день (1..2)
	// Уникальны среди активных записей, на них держатся ограничения в БД
	SlotSeq int
	DaySeq  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись не отменена
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCanceled
}

// IsCanceled возвращает true, если запись отменена
func (a *Appointment) IsCanceled() bool {
	return a.Status == StatusCanceled
}

// FullName имя и фамилия клиента
func (a *Appointment) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// AppointmentsFilter фильтр списка записей для администратора
type AppointmentsFilter struct {
	From   *time.Time // включительно
	To     *time.Time // не включительно
	Status *AppointmentStatus
}

// ParseAppointmentStatus проверяет строковый статус
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch status := AppointmentStatus(s); status {
	case StatusBooked, StatusReady, StatusCanceled, StatusDone:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// NewCancelToken генерирует непредсказуемый токен отмены (12 случайных байт в hex)
func NewCancelToken() (string, error) {
	buf := make([]byte, CancelTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate cancel token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// NormalizePhone убирает пробелы, дефисы, точки и скобки из номера телефона
// Одинаковые номера в разной записи должны считаться одним клиентом
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range strings.TrimSpace(phone) {
		switch r {
		case ' ', '-', '.', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsValidPhone проверяет нормализованный номер: необязательный "+" и цифры, длина 8..20
func IsValidPhone(phone string) bool {
	if len(phone) < MinPhoneLength || len(phone) > MaxPhoneLength {
		return false
	}
	for i, r := range phone {
		if r == '+' && i == 0 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
