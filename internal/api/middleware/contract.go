package middleware

import (
	"context"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/service/auth/models"
)

// TokenVerifier проверяет bearer токен администратора
type TokenVerifier interface {
	Verify(token string) (*models.Principal, error)
}

// MetricsRecorder получатель HTTP метрик
type MetricsRecorder interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Limiter решает, пропускать ли очередной запрос с ключом key
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
