package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// 2025-03-10 понедельник
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestSlotsForDay_DefaultConfig(t *testing.T) {
	slots := SlotsForDay(monday, DefaultBusinessConfig())

	assert.Equal(t, []types.TimeString{
		"08:30", "09:30", "10:30", "11:30", "12:30",
		"13:30", "14:30", "15:30", "16:30", "17:30",
	}, slots)
}

func TestSlotsForDay_PartialFinalSlotExcluded(t *testing.T) {
	cfg := DefaultBusinessConfig()
	cfg.SlotDurationMinutes = 45

	slots := SlotsForDay(monday, cfg)

	require.Len(t, slots, 13)
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
	assert.NotContains(t, slots, types.TimeString("18:15"))
}

func TestSlotsForDay_LastSlotMayEndExactlyAtClose(t *testing.T) {
	cfg := DefaultBusinessConfig()
	cfg.OpenTime = "09:00"
	cfg.CloseTime = "10:00"
	cfg.SlotDurationMinutes = 30

	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, SlotsForDay(monday, cfg))
}

func TestSlotsForDay_ClosedWeekday(t *testing.T) {
	sunday := monday.AddDate(0, 0, -1)

	assert.Empty(t, SlotsForDay(sunday, DefaultBusinessConfig()))
}

func TestSlotsForDay_IntervalShorterThanSlot(t *testing.T) {
	cfg := DefaultBusinessConfig()
	cfg.OpenTime = "09:00"
	cfg.CloseTime = "09:30"
	cfg.SlotDurationMinutes = 60

	assert.Empty(t, SlotsForDay(monday, cfg))
}

func TestSlotsForDay_Properties(t *testing.T) {
	opens := []types.TimeString{"00:00", "07:00", "08:30", "09:10", "12:45"}
	closes := []types.TimeString{"12:00", "17:00", "18:30", "23:59"}

	for _, open := range opens {
		for _, closeAt := range closes {
			if !open.IsBefore(closeAt) {
				continue
			}
			for duration := MinSlotDurationMinutes; duration <= MaxSlotDurationMinutes; duration += 5 {
				cfg := &BusinessConfig{
					OpenDays:            DefaultOpenDays,
					OpenTime:            open,
					CloseTime:           closeAt,
					SlotDurationMinutes: duration,
					MaxPerSlot:          1,
				}

				slots := SlotsForDay(monday, cfg)
				expected := (closeAt.Minutes() - open.Minutes()) / duration
				require.Len(t, slots, expected, "open=%s close=%s duration=%d", open, closeAt, duration)

				for i, slot := range slots {
					if i == 0 {
						assert.Equal(t, open, slot)
					} else {
						assert.Equal(t, duration, slot.Minutes()-slots[i-1].Minutes())
					}
					assert.LessOrEqual(t, slot.Minutes()+duration, closeAt.Minutes())
				}

				// чистая функция: повторный вызов дает тот же результат
				assert.Equal(t, slots, SlotsForDay(monday, cfg))
			}
		}
	}
}

func TestCountActiveByTime(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	at := func(h, m int) time.Time { return time.Date(2025, 3, 10, h, m, 0, 0, loc).UTC() }

	counts := CountActiveByTime([]*Appointment{
		{DateTime: at(10, 30), Status: StatusBooked},
		{DateTime: at(10, 30), Status: StatusReady},
		{DateTime: at(10, 30), Status: StatusCanceled},
		{DateTime: at(11, 30), Status: StatusBooked},
	}, loc)

	assert.Equal(t, 2, counts["10:30"])
	assert.Equal(t, 1, counts["11:30"])
	assert.Zero(t, counts["12:30"])
}

func TestSlotOccupancy(t *testing.T) {
	s := SlotOccupancy{Time: "10:30", Booked: 2, Capacity: 2}
	assert.True(t, s.IsFull())
	assert.False(t, s.IsAvailable())
	assert.Zero(t, s.FreeSpots())

	s = SlotOccupancy{Time: "11:30", Booked: 1, Capacity: 2, Blocked: true}
	assert.False(t, s.IsFull())
	assert.False(t, s.IsAvailable())
	assert.Equal(t, 1, s.FreeSpots())
}
