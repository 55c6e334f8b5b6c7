package domain

import (
	"time"

	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// Значения конфигурации по умолчанию
const (
	DefaultOpenTime            types.TimeString = "08:30"
	DefaultCloseTime           types.TimeString = "18:30"
	DefaultSlotDurationMinutes                  = 60
	DefaultMaxPerSlot                           = 2
)

// DefaultOpenDays понедельник - суббота
var DefaultOpenDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
}

// Ограничения бизнес-правил
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 240
	MinPerSlot             = 1
	MaxPerSlot             = 10

	// MaxAppointmentsPerPhonePerDay сколько активных записей может иметь один телефон в день
	MaxAppointmentsPerPhonePerDay = 2

	MinPhoneLength             = 8
	MaxPhoneLength             = 20
	MaxNameLength              = 60
	MinServiceDescriptorLength = 3
	MaxServiceDescriptorLength = 50
	MaxReasonLength            = 200

	// MaxRangeDays максимальный диапазон дат для административных выборок по дням
	MaxRangeDays = 62

	CancelTokenBytes = 12
)

// ReminderWindow за сколько до начала записи отправляется напоминание
const ReminderWindow = 30 * time.Minute

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ParseDate разбирает дату YYYY-MM-DD в полночь указанной локации
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, loc)
}

// StartOfDay полночь того же календарного дня в локации t
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay проверяет, что даты относятся к одному календарному дню
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
