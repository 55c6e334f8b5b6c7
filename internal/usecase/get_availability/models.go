package get_availability

import "github.com/santilopez19/TurneroPremium/pkg/types"

// Request модель запроса свободных слотов
type Request struct {
	Date string // YYYY-MM-DD в часовом поясе бизнеса
}

// Response модель ответа со свободными слотами
type Response struct {
	Date     string             // Дата запроса
	Slots    []types.TimeString // Свободные слоты по возрастанию
	Blocked  bool               // День заблокирован администратором
	Reason   *string            // Причина блокировки дня
	Capacity int                // Мест в одном слоте
}
