package archive_appointments

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
	items []*domain.Appointment
	err   error
}

func (r *fakeRepo) ArchivePast(_ context.Context, before time.Time) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for _, a := range r.items {
		if a.DateTime.Before(before) && a.Status != domain.StatusDone {
			a.Status = domain.StatusDone
			n++
		}
	}
	return n, nil
}

type countingMetrics struct {
	archived int64
}

func (m *countingMetrics) AddArchived(n int64) {
	m.archived += n
}

func TestUseCase_ArchivesBeforeStartOfToday(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	now := time.Date(2025, 3, 10, 0, 5, 0, 0, loc)

	repo := &fakeRepo{items: []*domain.Appointment{
		{ID: "yesterday", DateTime: time.Date(2025, 3, 9, 18, 0, 0, 0, loc), Status: domain.StatusBooked},
		{ID: "canceled", DateTime: time.Date(2025, 3, 9, 10, 0, 0, 0, loc), Status: domain.StatusCanceled},
		{ID: "ready", DateTime: time.Date(2025, 3, 8, 10, 0, 0, 0, loc), Status: domain.StatusReady},
		{ID: "today", DateTime: time.Date(2025, 3, 10, 8, 30, 0, 0, loc), Status: domain.StatusBooked},
	}}
	metrics := &countingMetrics{}
	uc := NewUseCase(repo, metrics, &clock.Fixed{At: now}, logger.NewNop())

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.Archived)
	assert.True(t, resp.Before.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, loc)))
	assert.Equal(t, domain.StatusDone, repo.items[1].Status)
	assert.Equal(t, domain.StatusBooked, repo.items[3].Status)

	// повторный запуск ничего не меняет
	resp, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.Archived)
	assert.Equal(t, int64(3), metrics.archived)
}

func TestUseCase_StartOfDayUsesBusinessZone(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	// 01:00 UTC это еще 22:00 предыдущего дня по Буэнос-Айресу
	now := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)
	tp := &fixedInZone{at: now, loc: loc}

	uc := NewUseCase(&fakeRepo{}, &countingMetrics{}, tp, logger.NewNop())
	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Before.Equal(time.Date(2025, 3, 9, 0, 0, 0, 0, loc)))
}

func TestUseCase_RepositoryError(t *testing.T) {
	uc := NewUseCase(&fakeRepo{err: errors.New("boom")}, &countingMetrics{}, clock.New(time.UTC), logger.NewNop())

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

type fixedInZone struct {
	at  time.Time
	loc *time.Location
}

func (f *fixedInZone) Now() time.Time           { return f.at }
func (f *fixedInZone) Location() *time.Location { return f.loc }
