package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	appointmentRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/appointment"
	"github.com/santilopez19/TurneroPremium/internal/service/appointments/models"
)

// Service сервис для работы с существующими записями
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	notifier        Notifier
	publisher       EventPublisher
	timeProvider    TimeProvider
	templates       domain.MessageTemplates
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	notifier Notifier,
	publisher EventPublisher,
	timeProvider TimeProvider,
	templates domain.MessageTemplates,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		notifier:        notifier,
		publisher:       publisher,
		timeProvider:    timeProvider,
		templates:       templates,
		logger:          logger,
	}
}

// GetByToken получает запись по токену отмены
func (s *Service) GetByToken(ctx context.Context, token string) (*models.PublicAppointmentResponse, error) {
	s.logger.Info("GetByToken: fetching appointment by cancel token")

	appointment, err := s.getByToken(ctx, "GetByToken", token)
	if err != nil {
		return nil, err
	}

	return models.FromDomainPublic(appointment), nil
}

// CancelByToken отменяет запись по токену
// Уже отмененная запись возвращается без изменений
func (s *Service) CancelByToken(ctx context.Context, token string) (*models.PublicAppointmentResponse, error) {
	s.logger.Info("CancelByToken: cancelling appointment by token")

	appointment, err := s.getByToken(ctx, "CancelByToken", token)
	if err != nil {
		return nil, err
	}

	if appointment.IsCanceled() {
		s.logger.Info("CancelByToken: appointment id=%s already canceled", appointment.ID)
		return models.FromDomainPublic(appointment), nil
	}

	changed, err := s.appointmentRepo.CancelByToken(ctx, token)
	if err != nil {
		s.logger.Error("CancelByToken: repository error for appointment id=%s: %v", appointment.ID, err)
		return nil, fmt.Errorf("%w: CancelByToken - repository error: %v", ErrInternal, err)
	}

	// Перечитываем, чтобы вернуть актуальный статус и updated_at
	appointment, err = s.getByToken(ctx, "CancelByToken", token)
	if err != nil {
		return nil, err
	}

	if changed {
		s.publish(ctx, domain.EventAppointmentCanceled, appointment)
		s.logger.Info("CancelByToken: successfully canceled appointment id=%s", appointment.ID)
	}

	return models.FromDomainPublic(appointment), nil
}

// MarkReady отмечает запись готовой и уведомляет клиента
// Ошибка отправки сообщения не отменяет смену статуса
func (s *Service) MarkReady(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("MarkReady: marking appointment id=%s as ready", id)

	now := s.timeProvider.Now()

	// Смена статуса и перечитывание в одной транзакции
	var appointment *domain.Appointment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.appointmentRepo.MarkReady(txCtx, id, now); err != nil {
			return err
		}

		var err error
		appointment, err = s.appointmentRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Warn("MarkReady: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrAppointmentNotActive):
			s.logger.Warn("MarkReady: appointment id=%s is canceled or archived", id)
			return nil, ErrAppointmentNotActive
		default:
			s.logger.Error("MarkReady: repository error for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: MarkReady - repository error: %v", ErrInternal, err)
		}
	}

	if err := s.notifier.Send(ctx, appointment.Phone, s.templates.ReadyMessage(appointment)); err != nil {
		s.logger.Warn("MarkReady: failed to notify appointment id=%s: %v", id, err)
	}

	s.publish(ctx, domain.EventAppointmentReady, appointment)

	s.logger.Info("MarkReady: appointment id=%s is ready", id)
	return models.FromDomainAppointment(appointment), nil
}

// List возвращает записи за период, по умолчанию с начала сегодняшнего дня
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	list, err := s.list(ctx, "List", req)
	if err != nil {
		return nil, err
	}
	return models.FromDomainAppointmentList(list), nil
}

func (s *Service) list(ctx context.Context, method string, req *models.ListRequest) ([]*domain.Appointment, error) {
	filter, err := s.buildFilter(req)
	if err != nil {
		s.logger.Warn("%s: invalid range: %v", method, err)
		return nil, err
	}

	s.logger.Info("%s: fetching appointments from=%s", method, filter.From.Format(time.RFC3339))

	list, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", method, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	s.logger.Info("%s: fetched %d appointments", method, len(list))
	return list, nil
}

// Вспомогательные методы

func (s *Service) getByToken(ctx context.Context, method, token string) (*domain.Appointment, error) {
	if token == "" {
		return nil, ErrAppointmentNotFound
	}

	appointment, err := s.appointmentRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment not found by token", method)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error: %v", method, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return appointment, nil
}

// buildFilter переводит даты запроса в полуинтервал [from, to+1 день)
func (s *Service) buildFilter(req *models.ListRequest) (domain.AppointmentsFilter, error) {
	loc := s.timeProvider.Location()
	from := domain.StartOfDay(s.timeProvider.Now().In(loc))

	if req != nil && req.From != nil && *req.From != "" {
		parsed, err := domain.ParseDate(*req.From, loc)
		if err != nil {
			return domain.AppointmentsFilter{}, fmt.Errorf("%w: invalid from date %q", ErrInvalidInput, *req.From)
		}
		from = parsed
	}

	filter := domain.AppointmentsFilter{From: &from}

	if req != nil && req.To != nil && *req.To != "" {
		parsed, err := domain.ParseDate(*req.To, loc)
		if err != nil {
			return domain.AppointmentsFilter{}, fmt.Errorf("%w: invalid to date %q", ErrInvalidInput, *req.To)
		}
		if parsed.Before(from) {
			return domain.AppointmentsFilter{}, fmt.Errorf("%w: to is before from", ErrInvalidInput)
		}
		to := parsed.AddDate(0, 0, 1)
		filter.To = &to
	}

	if req != nil && req.Status != nil && *req.Status != "" {
		status, err := domain.ParseAppointmentStatus(*req.Status)
		if err != nil {
			return domain.AppointmentsFilter{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	return filter, nil
}

func (s *Service) publish(ctx context.Context, t domain.AppointmentEventType, a *domain.Appointment) {
	if err := s.publisher.Publish(ctx, domain.NewAppointmentEvent(t, a, s.timeProvider.Now())); err != nil {
		s.logger.Warn("publish: failed to publish %s for appointment id=%s: %v", t, a.ID, err)
	}
}
