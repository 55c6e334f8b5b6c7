package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	blockingRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/blocking"
	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// UseCase use case расчета свободных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	configProvider  ConfigProvider
	timeProvider    TimeProvider
	noticeMinutes   int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// noticeMinutes: за сколько минут до начала слот перестает предлагаться на сегодня
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	configProvider ConfigProvider,
	timeProvider TimeProvider,
	noticeMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		configProvider:  configProvider,
		timeProvider:    timeProvider,
		noticeMinutes:   noticeMinutes,
		logger:          logger,
	}
}

// Execute возвращает свободные слоты на дату
// Конфигурация, блокировки и записи читаются заново при каждом вызове
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	loc := uc.timeProvider.Location()

	// 1. Валидация входных данных
	date, err := validateRequest(req, loc)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	dateStr := date.Format(domain.DateFormat)
	now := uc.timeProvider.Now().In(loc)

	response := &Response{
		Date:  dateStr,
		Slots: []types.TimeString{},
	}

	// 2. Прошедшие дни не предлагаются
	if isDateInPast(date, now) {
		return response, nil
	}

	// 3. Заблокированный день
	blocked, err := uc.blockRepo.GetActiveDate(ctx, dateStr)
	if err != nil && !errors.Is(err, blockingRepo.ErrBlockNotFound) {
		uc.logger.Error("GetAvailability: failed to get blocked date %s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: failed to get blocked date: %v", ErrInternal, err)
	}
	if blocked != nil {
		response.Blocked = true
		response.Reason = blocked.Reason
		return response, nil
	}

	// 4. Сетка слотов по текущей конфигурации
	config, err := uc.configProvider.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get business config: %v", err)
		return nil, fmt.Errorf("%w: failed to get business config: %v", ErrInternal, err)
	}
	response.Capacity = config.MaxPerSlot

	candidates := domain.SlotsForDay(date, config)
	if len(candidates) == 0 {
		return response, nil
	}

	// 5. Заблокированные слоты
	blockedSlots, err := uc.blockRepo.ListActiveTimeSlots(ctx, dateStr, dateStr)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get blocked time slots for %s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: failed to get blocked time slots: %v", ErrInternal, err)
	}
	blockedTimes := domain.BlockedTimesSet(blockedSlots)

	// 6. Занятость слотов
	appointments, err := uc.appointmentRepo.ListActiveOnDates(ctx, dateStr, dateStr)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments for %s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	counts := domain.CountActiveByTime(appointments, loc)

	free := make([]types.TimeString, 0, len(candidates))
	for _, slot := range candidates {
		if blockedTimes[slot] {
			continue
		}
		if counts[slot] >= config.MaxPerSlot {
			continue
		}
		free = append(free, slot)
	}

	// 7. Сегодня предлагаются только слоты, которые еще не начались
	if domain.IsSameDay(date, now) {
		free = filterStarted(free, now, uc.noticeMinutes)
	}

	response.Slots = free
	return response, nil
}
