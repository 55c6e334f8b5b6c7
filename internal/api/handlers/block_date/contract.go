package block_date

import (
	"context"

	"github.com/santilopez19/TurneroPremium/internal/service/blocking/models"
)

type BlockService interface {
	BlockDate(ctx context.Context, req *models.BlockDateRequest) (*models.BlockedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
