package models

import (
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
)

// Request модели

// BlockDateRequest запрос на закрытие дня
type BlockDateRequest struct {
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// BlockTimeSlotRequest запрос на закрытие одного слота
type BlockTimeSlotRequest struct {
	Date   string  `json:"date"`
	Time   string  `json:"time"`
	Reason *string `json:"reason,omitempty"`
}

// ListBlocksRequest диапазон выборки активных блокировок, пустые границы не ограничивают
type ListBlocksRequest struct {
	From *string `json:"from,omitempty"`
	To   *string `json:"to,omitempty"`
}

// Response модели

// BlockedDateResponse закрытый день
type BlockedDateResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedTimeSlotResponse закрытый слот
type BlockedTimeSlotResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlocksResponse активные блокировки
type BlocksResponse struct {
	Dates     []BlockedDateResponse     `json:"dates"`
	TimeSlots []BlockedTimeSlotResponse `json:"timeSlots"`
}

// Методы конвертации

// FromDomainBlockedDate конвертирует domain модель в DTO
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	if b == nil {
		return nil
	}
	return &BlockedDateResponse{
		ID:        b.ID,
		Date:      b.Date,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockedTimeSlot конвертирует domain модель в DTO
func FromDomainBlockedTimeSlot(b *domain.BlockedTimeSlot) *BlockedTimeSlotResponse {
	if b == nil {
		return nil
	}
	return &BlockedTimeSlotResponse{
		ID:        b.ID,
		Date:      b.Date,
		Time:      b.Time.String(),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlocks собирает ответ со всеми блокировками
func FromDomainBlocks(dates []*domain.BlockedDate, slots []*domain.BlockedTimeSlot) *BlocksResponse {
	resp := &BlocksResponse{
		Dates:     make([]BlockedDateResponse, 0, len(dates)),
		TimeSlots: make([]BlockedTimeSlotResponse, 0, len(slots)),
	}
	for _, d := range dates {
		if item := FromDomainBlockedDate(d); item != nil {
			resp.Dates = append(resp.Dates, *item)
		}
	}
	for _, s := range slots {
		if item := FromDomainBlockedTimeSlot(s); item != nil {
			resp.TimeSlots = append(resp.TimeSlots, *item)
		}
	}
	return resp
}
