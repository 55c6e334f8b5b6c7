package send_reminders

import (
	"context"
	"fmt"

	"github.com/santilopez19/TurneroPremium/internal/domain"
)

// UseCase рассылка напоминаний о записях в ближайшие 30 минут
type UseCase struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	metrics         Metrics
	timeProvider    TimeProvider
	templates       domain.MessageTemplates
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	notifier Notifier,
	metrics Metrics,
	timeProvider TimeProvider,
	templates domain.MessageTemplates,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		metrics:         metrics,
		timeProvider:    timeProvider,
		templates:       templates,
		logger:          logger,
	}
}

// Execute отправляет напоминания по записям в окне [now, now+30m]
// Ошибка по одной записи не прерывает проход: запись остается неотмеченной
// и попадет в следующий проход, пока окно не закроется
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	to := now.Add(domain.ReminderWindow)

	due, err := uc.appointmentRepo.ListDueForReminder(ctx, now, to)
	if err != nil {
		uc.logger.Error("SendReminders: failed to list due appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list due appointments: %v", ErrInternal, err)
	}

	resp := &Response{Found: len(due)}

	for _, appointment := range due {
		if err := ctx.Err(); err != nil {
			uc.logger.Warn("SendReminders: interrupted after %d of %d: %v", resp.Sent+resp.Failed, resp.Found, err)
			resp.Failed += resp.Found - resp.Sent - resp.Failed
			break
		}

		if uc.remind(ctx, appointment) {
			resp.Sent++
		} else {
			resp.Failed++
		}
	}

	uc.metrics.AddReminders(resp.Sent, resp.Failed)
	uc.logger.Info("SendReminders: found=%d, sent=%d, failed=%d", resp.Found, resp.Sent, resp.Failed)
	return resp, nil
}

func (uc *UseCase) remind(ctx context.Context, appointment *domain.Appointment) bool {
	body := uc.templates.ReminderMessage(appointment)

	if err := uc.notifier.Send(ctx, appointment.Phone, body); err != nil {
		uc.logger.Warn("SendReminders: failed to notify appointment id=%s: %v", appointment.ID, err)
		return false
	}

	marked, err := uc.appointmentRepo.MarkReminderSent(ctx, appointment.ID, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("SendReminders: failed to mark appointment id=%s: %v", appointment.ID, err)
		return false
	}
	if !marked {
		// параллельный проход успел отметить раньше
		uc.logger.Info("SendReminders: appointment id=%s already marked", appointment.ID)
	}

	return true
}
