package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// BusinessConfig настройки расписания бизнеса (одна активная запись)
type BusinessConfig struct {
	OpenDays            []time.Weekday
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	MaxPerSlot          int
	UpdatedAt           time.Time
}

// DefaultBusinessConfig конфигурация, которая действует, пока администратор ничего не сохранил
func DefaultBusinessConfig() *BusinessConfig {
	days := make([]time.Weekday, len(DefaultOpenDays))
	copy(days, DefaultOpenDays)

	return &BusinessConfig{
		OpenDays:            days,
		OpenTime:            DefaultOpenTime,
		CloseTime:           DefaultCloseTime,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		MaxPerSlot:          DefaultMaxPerSlot,
	}
}

// IsOpenOn возвращает true, если бизнес работает в этот день недели
func (c *BusinessConfig) IsOpenOn(day time.Weekday) bool {
	for _, d := range c.OpenDays {
		if d == day {
			return true
		}
	}
	return false
}

// Validate проверяет инварианты конфигурации
func (c *BusinessConfig) Validate() error {
	if len(c.OpenDays) == 0 {
		return fmt.Errorf("%w: at least one open day is required", ErrInvalidConfig)
	}

	seen := make(map[time.Weekday]bool, len(c.OpenDays))
	for _, d := range c.OpenDays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: open day %d out of range 0-6", ErrInvalidConfig, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: open day %d duplicated", ErrInvalidConfig, d)
		}
		seen[d] = true
	}

	if err := c.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: openTime: %v", ErrInvalidConfig, err)
	}
	if err := c.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: closeTime: %v", ErrInvalidConfig, err)
	}
	if !c.OpenTime.IsBefore(c.CloseTime) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidConfig)
	}

	if c.SlotDurationMinutes < MinSlotDurationMinutes || c.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDuration must be between %d and %d minutes",
			ErrInvalidConfig, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}

	if c.MaxPerSlot < MinPerSlot || c.MaxPerSlot > MaxPerSlot {
		return fmt.Errorf("%w: maxPerSlot must be between %d and %d", ErrInvalidConfig, MinPerSlot, MaxPerSlot)
	}

	return nil
}

// SortedOpenDays дни работы по возрастанию
func (c *BusinessConfig) SortedOpenDays() []time.Weekday {
	days := make([]time.Weekday, len(c.OpenDays))
	copy(days, c.OpenDays)
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}
