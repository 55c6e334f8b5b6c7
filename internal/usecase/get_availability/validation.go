package get_availability

import (
	"fmt"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// validateRequest разбирает дату запроса в часовом поясе бизнеса
func validateRequest(req *Request, loc *time.Location) (time.Time, error) {
	if req.Date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	date, err := domain.ParseDate(req.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q must be YYYY-MM-DD", ErrInvalidDate, req.Date)
	}

	return date, nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return date.Before(domain.StartOfDay(now))
}

// filterStarted убирает слоты сегодняшнего дня, которые начинаются не позже now + notice
// Сравнение идет с точностью до минуты
func filterStarted(slots []types.TimeString, now time.Time, noticeMinutes int) []types.TimeString {
	limit := now.Hour()*60 + now.Minute() + noticeMinutes

	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.Minutes() > limit {
			result = append(result, slot)
		}
	}
	return result
}
