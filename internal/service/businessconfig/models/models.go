package models

import (
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// Request модели

// UpdateConfigRequest запрос на изменение расписания
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	OpenDays            []int   `json:"openDays,omitempty"` // 0 = воскресенье ... 6 = суббота
	OpenTime            *string `json:"openTime,omitempty"`
	CloseTime           *string `json:"closeTime,omitempty"`
	SlotDurationMinutes *int    `json:"slotDurationMinutes,omitempty"`
	MaxPerSlot          *int    `json:"maxPerSlot,omitempty"`
}

// Response модели

// ConfigResponse ответ с текущим расписанием
type ConfigResponse struct {
	OpenDays            []int      `json:"openDays"`
	OpenTime            string     `json:"openTime"`
	CloseTime           string     `json:"closeTime"`
	SlotDurationMinutes int        `json:"slotDurationMinutes"`
	MaxPerSlot          int        `json:"maxPerSlot"`
	Timezone            string     `json:"timezone"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"` // nil - действуют значения по умолчанию
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.BusinessConfig, timezone string) *ConfigResponse {
	if c == nil {
		return nil
	}

	days := c.SortedOpenDays()
	openDays := make([]int, len(days))
	for i, d := range days {
		openDays[i] = int(d)
	}

	resp := &ConfigResponse{
		OpenDays:            openDays,
		OpenTime:            c.OpenTime.String(),
		CloseTime:           c.CloseTime.String(),
		SlotDurationMinutes: c.SlotDurationMinutes,
		MaxPerSlot:          c.MaxPerSlot,
		Timezone:            timezone,
	}

	if !c.UpdatedAt.IsZero() {
		updatedAt := c.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

// ApplyToConfig применяет обновления к существующей конфигурации
// Обновляются только непустые (not nil) поля из request
func (r *UpdateConfigRequest) ApplyToConfig(config *domain.BusinessConfig) error {
	if r.OpenDays != nil {
		days := make([]time.Weekday, len(r.OpenDays))
		for i, d := range r.OpenDays {
			days[i] = time.Weekday(d)
		}
		config.OpenDays = days
	}
	if r.OpenTime != nil {
		t, err := types.NewTimeStringFromString(*r.OpenTime)
		if err != nil {
			return err
		}
		config.OpenTime = t
	}
	if r.CloseTime != nil {
		t, err := types.NewTimeStringFromString(*r.CloseTime)
		if err != nil {
			return err
		}
		config.CloseTime = t
	}
	if r.SlotDurationMinutes != nil {
		config.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.MaxPerSlot != nil {
		config.MaxPerSlot = *r.MaxPerSlot
	}
	return nil
}
