package block_time_slot

import (
	"context"

	"github.com/santilopez19/TurneroPremium/internal/service/blocking/models"
)

type BlockService interface {
	BlockTimeSlot(ctx context.Context, req *models.BlockTimeSlotRequest) (*models.BlockedTimeSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
