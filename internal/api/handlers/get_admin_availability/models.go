package get_admin_availability

import (
	getAdminAvailability "github.com/santilopez19/TurneroPremium/internal/usecase/get_admin_availability"
)

// SlotResponse загрузка одного слота
type SlotResponse struct {
	Time      string `json:"time"`
	Booked    int    `json:"booked"`
	Capacity  int    `json:"capacity"`
	Free      int    `json:"free"`
	Blocked   bool   `json:"blocked"`
	Available bool   `json:"available"` // не закрыт и есть места
}

// DayResponse загрузка одного дня
type DayResponse struct {
	Date         string         `json:"date"`
	Blocked      bool           `json:"blocked"`
	Reason       *string        `json:"reason,omitempty"`
	Slots        []SlotResponse `json:"slots"`
	TotalSlots   int            `json:"totalSlots"`
	BlockedSlots int            `json:"blockedSlots"`
	BookedSlots  int            `json:"bookedSlots"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Days []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAdminAvailability.Response) *AvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, SlotResponse{
				Time:      slot.Time.String(),
				Booked:    slot.Booked,
				Capacity:  slot.Capacity,
				Free:      slot.FreeSpots(),
				Blocked:   slot.Blocked,
				Available: slot.IsAvailable(),
			})
		}

		days = append(days, DayResponse{
			Date:         day.Date,
			Blocked:      day.Blocked,
			Reason:       day.Reason,
			Slots:        slots,
			TotalSlots:   day.TotalSlots,
			BlockedSlots: day.BlockedSlots,
			BookedSlots:  day.BookedSlots,
		})
	}

	return &AvailabilityResponse{Days: days}
}
