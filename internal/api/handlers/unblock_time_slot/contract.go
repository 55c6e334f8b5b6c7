package unblock_time_slot

import "context"

type BlockService interface {
	UnblockTimeSlot(ctx context.Context, date, at string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
