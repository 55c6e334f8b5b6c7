package get_admin_availability

import "github.com/santilopez19/TurneroPremium/internal/domain"

// Request модель запроса обзора загрузки
type Request struct {
	From string // YYYY-MM-DD
	To   string // YYYY-MM-DD, включительно
}

// DaySummary загрузка одного дня
type DaySummary struct {
	Date         string
	Blocked      bool
	Reason       *string
	Slots        []domain.SlotOccupancy
	TotalSlots   int // Слотов в сетке дня
	BlockedSlots int // Из них закрыто администратором
	BookedSlots  int // Слотов хотя бы с одной активной записью
}

// Response модель ответа
type Response struct {
	Days []DaySummary
}
