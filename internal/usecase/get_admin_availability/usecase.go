package get_admin_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// UseCase обзор загрузки по дням для администратора
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	configProvider  ConfigProvider
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	configProvider ConfigProvider,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		configProvider:  configProvider,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute собирает по каждому дню диапазона сетку слотов с занятостью и блокировками
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	loc := uc.timeProvider.Location()

	from, to, err := validateRequest(req, loc)
	if err != nil {
		uc.logger.Warn("GetAdminAvailability: validation failed: %v", err)
		return nil, err
	}

	fromStr, toStr := from.Format(domain.DateFormat), to.Format(domain.DateFormat)
	uc.logger.Info("GetAdminAvailability: from=%s, to=%s", fromStr, toStr)

	// Все чтения из одного снимка, чтобы счетчики дня не расходились со слотами
	var (
		config       *domain.BusinessConfig
		blockedDates []*domain.BlockedDate
		blockedSlots []*domain.BlockedTimeSlot
		appointments []*domain.Appointment
	)
	err = uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error

		config, err = uc.configProvider.Get(ctx)
		if err != nil {
			uc.logger.Error("GetAdminAvailability: failed to get business config: %v", err)
			return fmt.Errorf("%w: failed to get business config: %v", ErrInternal, err)
		}

		blockedDates, err = uc.blockRepo.ListActiveDates(ctx, fromStr, toStr)
		if err != nil {
			uc.logger.Error("GetAdminAvailability: failed to get blocked dates: %v", err)
			return fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
		}

		blockedSlots, err = uc.blockRepo.ListActiveTimeSlots(ctx, fromStr, toStr)
		if err != nil {
			uc.logger.Error("GetAdminAvailability: failed to get blocked time slots: %v", err)
			return fmt.Errorf("%w: failed to get blocked time slots: %v", ErrInternal, err)
		}

		appointments, err = uc.appointmentRepo.ListActiveOnDates(ctx, fromStr, toStr)
		if err != nil {
			uc.logger.Error("GetAdminAvailability: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("GetAdminAvailability: read transaction failed: %v", err)
		return nil, fmt.Errorf("%w: read transaction failed: %v", ErrInternal, err)
	}

	datesByDay := make(map[string]*domain.BlockedDate, len(blockedDates))
	for _, b := range blockedDates {
		datesByDay[b.Date] = b
	}

	slotsByDay := make(map[string][]*domain.BlockedTimeSlot)
	for _, b := range blockedSlots {
		slotsByDay[b.Date] = append(slotsByDay[b.Date], b)
	}

	appointmentsByDay := make(map[string][]*domain.Appointment)
	for _, a := range appointments {
		day := a.DateTime.In(loc).Format(domain.DateFormat)
		appointmentsByDay[day] = append(appointmentsByDay[day], a)
	}

	resp := &Response{Days: make([]DaySummary, 0, daysBetween(from, to)+1)}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		dayStr := day.Format(domain.DateFormat)
		summary := summarize(day, config,
			domain.BlockedTimesSet(slotsByDay[dayStr]),
			domain.CountActiveByTime(appointmentsByDay[dayStr], loc))

		if blocked, ok := datesByDay[dayStr]; ok {
			summary.Blocked = true
			summary.Reason = blocked.Reason
		}

		resp.Days = append(resp.Days, summary)
	}

	return resp, nil
}

// summarize сетка одного дня с занятостью; блокировка всего дня выставляется снаружи
func summarize(day time.Time, config *domain.BusinessConfig,
	blocked map[types.TimeString]bool, counts map[types.TimeString]int) DaySummary {
	grid := domain.SlotsForDay(day, config)

	summary := DaySummary{
		Date:       day.Format(domain.DateFormat),
		Slots:      make([]domain.SlotOccupancy, 0, len(grid)),
		TotalSlots: len(grid),
	}

	for _, slot := range grid {
		occupancy := domain.SlotOccupancy{
			Time:     slot,
			Booked:   counts[slot],
			Capacity: config.MaxPerSlot,
			Blocked:  blocked[slot],
		}
		if occupancy.Blocked {
			summary.BlockedSlots++
		}
		if occupancy.Booked > 0 {
			summary.BookedSlots++
		}
		summary.Slots = append(summary.Slots, occupancy)
	}

	return summary
}
