package domain

import (
	"time"

	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// SlotsForDay возвращает сетку слотов рабочего дня без учета записей и блокировок
// Слоты идут от OpenTime с шагом SlotDurationMinutes. Слот, который закончился бы
// позже CloseTime, не выдается: последний слот всегда заканчивается не позже закрытия.
// Для нерабочего дня недели возвращает пустой список.
func SlotsForDay(date time.Time, cfg *BusinessConfig) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if cfg == nil || cfg.SlotDurationMinutes <= 0 || !cfg.IsOpenOn(date.Weekday()) {
		return slots
	}

	current := cfg.OpenTime
	for current.IsBefore(cfg.CloseTime) {
		slotEnd, err := current.AddMinutes(cfg.SlotDurationMinutes)
		if err != nil || slotEnd.IsAfter(cfg.CloseTime) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots
}

// CountActiveByTime считает активные записи по времени начала (в локации loc)
func CountActiveByTime(appointments []*Appointment, loc *time.Location) map[types.TimeString]int {
	counts := make(map[types.TimeString]int)
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		counts[types.NewTimeString(a.DateTime.In(loc))]++
	}
	return counts
}

// SlotOccupancy загрузка одного слота
type SlotOccupancy struct {
	Time     types.TimeString
	Booked   int
	Capacity int
	Blocked  bool
}

// IsFull возвращает true, если свободных мест нет
func (s *SlotOccupancy) IsFull() bool {
	return s.Booked >= s.Capacity
}

// IsAvailable возвращает true, если слот не заблокирован и в нем есть места
func (s *SlotOccupancy) IsAvailable() bool {
	return !s.Blocked && !s.IsFull()
}

// FreeSpots количество свободных мест
func (s *SlotOccupancy) FreeSpots() int {
	free := s.Capacity - s.Booked
	if free < 0 {
		return 0
	}
	return free
}
