package businessconfig

import (
	"context"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.BusinessConfig, error)
	Upsert(ctx context.Context, cfg *domain.BusinessConfig) (*domain.BusinessConfig, error)
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
