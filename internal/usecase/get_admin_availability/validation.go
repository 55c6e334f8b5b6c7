package get_admin_availability

import (
	"fmt"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
)

// validateRequest разбирает границы диапазона и проверяет его длину
func validateRequest(req *Request, loc *time.Location) (time.Time, time.Time, error) {
	from, err := domain.ParseDate(req.From, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from %q must be YYYY-MM-DD", ErrInvalidRange, req.From)
	}

	to, err := domain.ParseDate(req.To, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to %q must be YYYY-MM-DD", ErrInvalidRange, req.To)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to is before from", ErrInvalidRange)
	}

	if days := daysBetween(from, to) + 1; days > domain.MaxRangeDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d days requested, max %d", ErrInvalidRange, days, domain.MaxRangeDays)
	}

	return from, to, nil
}

// daysBetween количество календарных дней между датами; устойчиво к переходу на летнее время
func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
