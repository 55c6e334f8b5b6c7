package get_business_config

import (
	"context"

	"github.com/santilopez19/TurneroPremium/internal/service/businessconfig/models"
)

type ConfigService interface {
	GetConfig(ctx context.Context) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
