package blocking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	blockingRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/blocking"
	"github.com/santilopez19/TurneroPremium/internal/service/blocking/models"
	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// Service сервис закрытия дней и слотов
// Снятие блокировки логическое: строка остается с active=false
type Service struct {
	blockRepo    BlockRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockRepo BlockRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		blockRepo:    blockRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// BlockDate закрывает день; повторная блокировка обновляет причину
func (s *Service) BlockDate(ctx context.Context, req *models.BlockDateRequest) (*models.BlockedDateResponse, error) {
	s.logger.Info("BlockDate: blocking date=%s", req.Date)

	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	reason, err := normalizeReason(req.Reason)
	if err != nil {
		return nil, err
	}

	blocked, err := s.blockRepo.BlockDate(ctx, date, reason)
	if err != nil {
		s.logger.Error("BlockDate: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: BlockDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockDate: date=%s blocked", date)
	return models.FromDomainBlockedDate(blocked), nil
}

// UnblockDate снимает блокировку дня
func (s *Service) UnblockDate(ctx context.Context, date string) error {
	s.logger.Info("UnblockDate: unblocking date=%s", date)

	date, err := s.parseDate(date)
	if err != nil {
		return err
	}

	if err := s.blockRepo.UnblockDate(ctx, date); err != nil {
		return s.mapUnblockError("UnblockDate", err)
	}

	s.logger.Info("UnblockDate: date=%s unblocked", date)
	return nil
}

// BlockTimeSlot закрывает один слот дня
func (s *Service) BlockTimeSlot(ctx context.Context, req *models.BlockTimeSlotRequest) (*models.BlockedTimeSlotResponse, error) {
	s.logger.Info("BlockTimeSlot: blocking date=%s time=%s", req.Date, req.Time)

	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	at, err := parseTime(req.Time)
	if err != nil {
		return nil, err
	}
	reason, err := normalizeReason(req.Reason)
	if err != nil {
		return nil, err
	}

	blocked, err := s.blockRepo.BlockTimeSlot(ctx, date, at, reason)
	if err != nil {
		s.logger.Error("BlockTimeSlot: repository error for %s %s: %v", date, at, err)
		return nil, fmt.Errorf("%w: BlockTimeSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockTimeSlot: %s %s blocked", date, at)
	return models.FromDomainBlockedTimeSlot(blocked), nil
}

// UnblockTimeSlot снимает блокировку слота
func (s *Service) UnblockTimeSlot(ctx context.Context, date, at string) error {
	s.logger.Info("UnblockTimeSlot: unblocking date=%s time=%s", date, at)

	date, err := s.parseDate(date)
	if err != nil {
		return err
	}
	slot, err := parseTime(at)
	if err != nil {
		return err
	}

	if err := s.blockRepo.UnblockTimeSlot(ctx, date, slot); err != nil {
		return s.mapUnblockError("UnblockTimeSlot", err)
	}

	s.logger.Info("UnblockTimeSlot: %s %s unblocked", date, slot)
	return nil
}

// ListBlocks возвращает активные блокировки дней и слотов за период
func (s *Service) ListBlocks(ctx context.Context, req *models.ListBlocksRequest) (*models.BlocksResponse, error) {
	var from, to string
	var err error

	if req != nil && req.From != nil && *req.From != "" {
		if from, err = s.parseDate(*req.From); err != nil {
			return nil, err
		}
	}
	if req != nil && req.To != nil && *req.To != "" {
		if to, err = s.parseDate(*req.To); err != nil {
			return nil, err
		}
	}
	if from != "" && to != "" && to < from {
		return nil, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}

	s.logger.Info("ListBlocks: fetching blocks from=%q to=%q", from, to)

	dates, err := s.blockRepo.ListActiveDates(ctx, from, to)
	if err != nil {
		s.logger.Error("ListBlocks: failed to list blocked dates: %v", err)
		return nil, fmt.Errorf("%w: ListBlocks - blocked dates: %v", ErrInternal, err)
	}

	slots, err := s.blockRepo.ListActiveTimeSlots(ctx, from, to)
	if err != nil {
		s.logger.Error("ListBlocks: failed to list blocked time slots: %v", err)
		return nil, fmt.Errorf("%w: ListBlocks - blocked time slots: %v", ErrInternal, err)
	}

	return models.FromDomainBlocks(dates, slots), nil
}

// Вспомогательные методы

// parseDate проверяет дату и возвращает ее в каноничном виде YYYY-MM-DD
func (s *Service) parseDate(value string) (string, error) {
	parsed, err := domain.ParseDate(strings.TrimSpace(value), s.timeProvider.Location())
	if err != nil {
		return "", fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, value)
	}
	return parsed.Format(domain.DateFormat), nil
}

func parseTime(value string) (types.TimeString, error) {
	at, err := types.NewTimeStringFromString(strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrInvalidInput, value)
	}
	return at, nil
}

// normalizeReason обрезает пробелы; пустая причина хранится как NULL
func normalizeReason(reason *string) (*string, error) {
	if reason == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	return &trimmed, nil
}

func (s *Service) mapUnblockError(method string, err error) error {
	if errors.Is(err, blockingRepo.ErrBlockNotFound) {
		s.logger.Warn("%s: block not found", method)
		return ErrBlockNotFound
	}
	s.logger.Error("%s: repository error: %v", method, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
}
