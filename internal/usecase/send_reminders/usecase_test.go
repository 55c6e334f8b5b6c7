package send_reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/pkg/clock"
	"github.com/santilopez19/TurneroPremium/pkg/logger"
)

type fakeRepo struct {
	items    []*domain.Appointment
	listErr  error
	from, to time.Time
	markErr  map[string]error
}

func (r *fakeRepo) ListDueForReminder(_ context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	r.from, r.to = from, to
	if r.listErr != nil {
		return nil, r.listErr
	}
	var due []*domain.Appointment
	for _, a := range r.items {
		if a.IsActive() && !a.ReminderSent && !a.DateTime.Before(from) && !a.DateTime.After(to) {
			due = append(due, a)
		}
	}
	return due, nil
}

func (r *fakeRepo) MarkReminderSent(_ context.Context, id string, at time.Time) (bool, error) {
	if err := r.markErr[id]; err != nil {
		return false, err
	}
	for _, a := range r.items {
		if a.ID == id && !a.ReminderSent {
			a.ReminderSent = true
			a.ReminderSentAt = &at
			return true, nil
		}
	}
	return false, nil
}

type fakeNotifier struct {
	failFor map[string]bool
	sent    []string
}

func (n *fakeNotifier) Send(_ context.Context, phone, body string) error {
	if n.failFor[phone] {
		return errors.New("rejected by provider")
	}
	n.sent = append(n.sent, body)
	return nil
}

type countingMetrics struct {
	sent, failed int
}

func (m *countingMetrics) AddReminders(sent, failed int) {
	m.sent += sent
	m.failed += failed
}

var loc = time.FixedZone("ART", -3*60*60)

func appointmentAt(id, phone string, at time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		FirstName: "Juan",
		Phone:     phone,
		DateTime:  at,
		Status:    domain.StatusBooked,
	}
}

func newUseCase(repo *fakeRepo, notifier *fakeNotifier, metrics *countingMetrics, now time.Time) *UseCase {
	templates := domain.MessageTemplates{BusinessName: "Barbería", Location: loc}
	return NewUseCase(repo, notifier, metrics, &clock.Fixed{At: now}, templates, logger.NewNop())
}

func TestUseCase_SendsOnlyInsideWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, loc)

	canceled := appointmentAt("c", "+5491100000003", now.Add(10*time.Minute))
	canceled.Status = domain.StatusCanceled
	already := appointmentAt("d", "+5491100000004", now.Add(15*time.Minute))
	already.ReminderSent = true

	repo := &fakeRepo{items: []*domain.Appointment{
		appointmentAt("a", "+5491100000001", now.Add(20*time.Minute)),
		appointmentAt("b", "+5491100000002", now.Add(30*time.Minute)),
		appointmentAt("late", "+5491100000005", now.Add(31*time.Minute)),
		canceled,
		already,
	}}
	notifier := &fakeNotifier{}
	metrics := &countingMetrics{}

	resp, err := newUseCase(repo, notifier, metrics, now).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &Response{Found: 2, Sent: 2, Failed: 0}, resp)
	assert.True(t, repo.from.Equal(now))
	assert.True(t, repo.to.Equal(now.Add(30*time.Minute)))
	assert.Equal(t, 2, metrics.sent)
	require.Len(t, notifier.sent, 2)
	assert.Equal(t, "¡Hola Juan! Te recordamos tu turno en Barbería a las 10:20. Te esperamos.", notifier.sent[0])

	assert.True(t, repo.items[0].ReminderSent)
	require.NotNil(t, repo.items[0].ReminderSentAt)
	assert.True(t, repo.items[0].ReminderSentAt.Equal(now))
	assert.False(t, repo.items[2].ReminderSent)
}

func TestUseCase_FailureIsIsolated(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, loc)
	repo := &fakeRepo{items: []*domain.Appointment{
		appointmentAt("a", "+5491100000001", now.Add(5*time.Minute)),
		appointmentAt("b", "+5491100000002", now.Add(10*time.Minute)),
		appointmentAt("c", "+5491100000003", now.Add(15*time.Minute)),
	}}
	notifier := &fakeNotifier{failFor: map[string]bool{"+5491100000002": true}}
	metrics := &countingMetrics{}

	resp, err := newUseCase(repo, notifier, metrics, now).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &Response{Found: 3, Sent: 2, Failed: 1}, resp)
	assert.True(t, repo.items[0].ReminderSent)
	assert.False(t, repo.items[1].ReminderSent)
	assert.True(t, repo.items[2].ReminderSent)
	assert.Equal(t, 1, metrics.failed)

	// повторный проход пытается отправить только неотмеченную запись
	notifier.failFor = nil
	resp, err = newUseCase(repo, notifier, metrics, now).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Response{Found: 1, Sent: 1, Failed: 0}, resp)
}

func TestUseCase_MarkFailureCountsAsFailed(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, loc)
	repo := &fakeRepo{
		items:   []*domain.Appointment{appointmentAt("a", "+5491100000001", now.Add(5*time.Minute))},
		markErr: map[string]error{"a": errors.New("deadlock")},
	}

	resp, err := newUseCase(repo, &fakeNotifier{}, &countingMetrics{}, now).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Response{Found: 1, Sent: 0, Failed: 1}, resp)
}

func TestUseCase_ListError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection reset")}

	_, err := newUseCase(repo, &fakeNotifier{}, &countingMetrics{}, time.Now()).Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
