package list_blocks

import (
	"context"

	"github.com/santilopez19/TurneroPremium/internal/service/blocking/models"
)

type BlockService interface {
	ListBlocks(ctx context.Context, req *models.ListBlocksRequest) (*models.BlocksResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
