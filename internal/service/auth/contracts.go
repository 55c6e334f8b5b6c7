package auth

import (
	"context"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/pkg/authtoken"
)

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, admin *domain.AdminUser) (*domain.AdminUser, error)
}

// TokenIssuer выпуск и проверка токенов администратора
type TokenIssuer interface {
	Issue(subject, role string) (string, time.Time, error)
	Verify(token string) (*authtoken.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
