package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	appointmentRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/appointment"
	"github.com/santilopez19/TurneroPremium/internal/usecase/get_availability"
	"github.com/santilopez19/TurneroPremium/pkg/pgerrors"
)

// UseCase use case записи клиента на слот
type UseCase struct {
	appointmentRepo AppointmentRepository
	resolver        AvailabilityResolver
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	resolver AvailabilityResolver,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		resolver:        resolver,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case записи
// Проверка вместимости, дневного лимита телефона и вставка выполняются в одной
// сериализуемой транзакции. Уникальные индексы по местам в слоте и за день
// не дают двум параллельным транзакциям занять одно место даже на разных инстансах.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, time=%s", req.Date, req.Time)

	loc := uc.timeProvider.Location()

	// 1. Валидация входных данных
	in, err := validateRequest(req, loc)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		uc.metrics.IncAppointment(resultInvalid)
		return nil, err
	}

	dateStr := in.date.Format(domain.DateFormat)

	// 2. Слот должен быть среди свободных прямо сейчас
	availability, err := uc.resolver.Execute(ctx, &get_availability.Request{Date: dateStr})
	if err != nil {
		if errors.Is(err, get_availability.ErrInvalidDate) {
			uc.metrics.IncAppointment(resultInvalid)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreateAppointment: failed to resolve availability for %s: %v", dateStr, err)
		uc.metrics.IncAppointment(resultError)
		return nil, fmt.Errorf("%w: failed to resolve availability: %v", ErrInternal, err)
	}

	if !isOffered(availability.Slots, in.at) {
		uc.logger.Warn("CreateAppointment: slot %s %s is not offered", dateStr, in.at)
		uc.metrics.IncAppointment(resultSlot)
		return nil, ErrSlotUnavailable
	}

	dateTime := in.at.On(in.date, loc)
	capacity := availability.Capacity

	token, err := domain.NewCancelToken()
	if err != nil {
		uc.logger.Error("CreateAppointment: %v", err)
		uc.metrics.IncAppointment(resultError)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 3. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Занятые места в слоте (FOR UPDATE)
		occupants, err := uc.appointmentRepo.ListActiveAt(txCtx, dateTime)
		if err != nil {
			return uc.storeError("list slot occupants", err)
		}
		if len(occupants) >= capacity {
			uc.logger.Warn("CreateAppointment: slot %s full, %d/%d spots taken", dateTime, len(occupants), capacity)
			return ErrSlotUnavailable
		}

		// 3.2. Записи телефона на этот день (FOR UPDATE)
		daily, err := uc.appointmentRepo.ListActiveByPhoneOnDate(txCtx, in.phone, dateStr)
		if err != nil {
			return uc.storeError("list phone appointments", err)
		}
		if len(daily) >= domain.MaxAppointmentsPerPhonePerDay {
			uc.logger.Warn("CreateAppointment: daily limit reached for date=%s", dateStr)
			return ErrDailyLimitExceeded
		}

		slotSeq := lowestFreeSeq(slotSeqs(occupants), capacity)
		daySeq := lowestFreeSeq(daySeqs(daily), domain.MaxAppointmentsPerPhonePerDay)
		if slotSeq == 0 {
			return ErrSlotUnavailable
		}
		if daySeq == 0 {
			return ErrDailyLimitExceeded
		}

		uc.logger.Info("CreateAppointment: slot available, %d/%d spots taken", len(occupants), capacity)

		// 3.3. Вставка; проигранная гонка за место приходит как нарушение уникальности
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			FirstName:         in.firstName,
			LastName:          in.lastName,
			Phone:             in.phone,
			ServiceDescriptor: in.service,
			DateTime:          dateTime,
			LocalDate:         dateStr,
			Status:            domain.StatusBooked,
			CancelToken:       token,
			ReminderSent:      false,
			SlotSeq:           slotSeq,
			DaySeq:            daySeq,
		})
		if err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrSlotTaken):
				return ErrSlotUnavailable
			case errors.Is(err, appointmentRepo.ErrDailySeatTaken):
				return ErrDailyLimitExceeded
			}
			return uc.storeError("create appointment", err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.finish(err)
	}

	uc.metrics.IncAppointment(resultCreated)
	uc.logger.Info("CreateAppointment: successfully created appointment id=%s at %s", result.ID, dateTime)

	// 4. Событие после коммита, ошибка публикации не отменяет запись
	event := domain.NewAppointmentEvent(domain.EventAppointmentBooked, result, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("CreateAppointment: failed to publish event for id=%s: %v", result.ID, err)
	}

	return &Response{
		ID:                result.ID,
		FirstName:         result.FirstName,
		LastName:          result.LastName,
		Phone:             result.Phone,
		ServiceDescriptor: result.ServiceDescriptor,
		DateTime:          result.DateTime.In(loc),
		Status:            string(result.Status),
		CancelToken:       result.CancelToken,
		ReminderSent:      result.ReminderSent,
		CreatedAt:         result.CreatedAt,
	}, nil
}

// storeError оставляет конфликты сериализации как есть, чтобы менеджер транзакций повторил попытку
func (uc *UseCase) storeError(step string, err error) error {
	if pgerrors.IsSerializationFailure(err) {
		return err
	}
	uc.logger.Error("CreateAppointment: failed to %s: %v", step, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, step, err)
}

// finish переводит ошибку транзакции в ошибку use case и считает метрику
func (uc *UseCase) finish(err error) error {
	switch {
	case errors.Is(err, ErrSlotUnavailable):
		uc.metrics.IncAppointment(resultSlot)
		return ErrSlotUnavailable
	case errors.Is(err, ErrDailyLimitExceeded):
		uc.metrics.IncAppointment(resultDailyLimit)
		return ErrDailyLimitExceeded
	case pgerrors.IsSerializationFailure(err):
		// Попытки исчерпаны: слот оспаривается прямо сейчас
		uc.logger.Warn("CreateAppointment: serialization retries exhausted: %v", err)
		uc.metrics.IncAppointment(resultSlot)
		return ErrSlotUnavailable
	case errors.Is(err, ErrInternal):
		uc.metrics.IncAppointment(resultError)
		return err
	default:
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		uc.metrics.IncAppointment(resultError)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func slotSeqs(appointments []*domain.Appointment) []int {
	seqs := make([]int, 0, len(appointments))
	for _, a := range appointments {
		seqs = append(seqs, a.SlotSeq)
	}
	return seqs
}

func daySeqs(appointments []*domain.Appointment) []int {
	seqs := make([]int, 0, len(appointments))
	for _, a := range appointments {
		seqs = append(seqs, a.DaySeq)
	}
	return seqs
}
