package blocking

import (
	"context"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	BlockDate(ctx context.Context, date string, reason *string) (*domain.BlockedDate, error)
	UnblockDate(ctx context.Context, date string) error
	ListActiveDates(ctx context.Context, fromDate, toDate string) ([]*domain.BlockedDate, error)
	BlockTimeSlot(ctx context.Context, date string, at types.TimeString, reason *string) (*domain.BlockedTimeSlot, error)
	UnblockTimeSlot(ctx context.Context, date string, at types.TimeString) error
	ListActiveTimeSlots(ctx context.Context, fromDate, toDate string) ([]*domain.BlockedTimeSlot, error)
}

// TimeProvider источник часового пояса бизнеса
type TimeProvider interface {
	Location() *time.Location
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
