package get_admin_availability

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
	"github.com/santilopez19/TurneroPremium/pkg/ptr"
	"github.com/santilopez19/TurneroPremium/pkg/types"
)

type fakeAppointments struct {
	items []*domain.Appointment
	err   error
}

func (f *fakeAppointments) ListActiveOnDates(context.Context, string, string) ([]*domain.Appointment, error) {
	return f.items, f.err
}

type fakeBlocks struct {
	dates []*domain.BlockedDate
	slots []*domain.BlockedTimeSlot
}

func (f *fakeBlocks) ListActiveDates(context.Context, string, string) ([]*domain.BlockedDate, error) {
	return f.dates, nil
}

func (f *fakeBlocks) ListActiveTimeSlots(context.Context, string, string) ([]*domain.BlockedTimeSlot, error) {
	return f.slots, nil
}

type staticConfig struct {
	cfg *domain.BusinessConfig
}

func (s *staticConfig) Get(context.Context) (*domain.BusinessConfig, error) {
	return s.cfg, nil
}

type readOnlyTx struct {
	calls int
	err   error
}

func (m *readOnlyTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

var loc = time.FixedZone("ART", -3*60*60)

func newUseCase(appointments *fakeAppointments, blocks *fakeBlocks) *UseCase {
	return newUseCaseWithTx(appointments, blocks, &readOnlyTx{})
}

func newUseCaseWithTx(appointments *fakeAppointments, blocks *fakeBlocks, tx *readOnlyTx) *UseCase {
	cfg := &domain.BusinessConfig{
		OpenDays:            []time.Weekday{time.Monday, time.Tuesday},
		OpenTime:            "09:00",
		CloseTime:           "12:00",
		SlotDurationMinutes: 60,
		MaxPerSlot:          2,
	}
	return NewUseCase(appointments, blocks, &staticConfig{cfg: cfg}, tx, clock.New(loc), logger.NewNop())
}

func TestUseCase_Overview(t *testing.T) {
	appointments := &fakeAppointments{items: []*domain.Appointment{
		{ID: "1", DateTime: time.Date(2025, 3, 10, 9, 0, 0, 0, loc), Status: domain.StatusBooked},
		{ID: "2", DateTime: time.Date(2025, 3, 10, 9, 0, 0, 0, loc), Status: domain.StatusReady},
		{ID: "3", DateTime: time.Date(2025, 3, 10, 11, 0, 0, 0, loc), Status: domain.StatusBooked},
	}}
	blocks := &fakeBlocks{
		dates: []*domain.BlockedDate{{Date: "2025-03-11", Reason: ptr.Ptr("Capacitación"), Active: true}},
		slots: []*domain.BlockedTimeSlot{{Date: "2025-03-10", Time: "10:00", Active: true}},
	}

	// понедельник, вторник, среда (выходной)
	resp, err := newUseCase(appointments, blocks).Execute(context.Background(), &Request{From: "2025-03-10", To: "2025-03-12"})
	require.NoError(t, err)
	require.Len(t, resp.Days, 3)

	monday := resp.Days[0]
	assert.Equal(t, "2025-03-10", monday.Date)
	assert.False(t, monday.Blocked)
	assert.Equal(t, 3, monday.TotalSlots)
	assert.Equal(t, 1, monday.BlockedSlots)
	assert.Equal(t, 2, monday.BookedSlots)
	assert.Equal(t, domain.SlotOccupancy{Time: types.TimeString("09:00"), Booked: 2, Capacity: 2}, monday.Slots[0])
	assert.True(t, monday.Slots[1].Blocked)

	tuesday := resp.Days[1]
	assert.True(t, tuesday.Blocked)
	require.NotNil(t, tuesday.Reason)
	assert.Equal(t, "Capacitación", *tuesday.Reason)

	wednesday := resp.Days[2]
	assert.Zero(t, wednesday.TotalSlots)
	assert.Empty(t, wednesday.Slots)
}

func TestUseCase_RangeValidation(t *testing.T) {
	uc := newUseCase(&fakeAppointments{}, &fakeBlocks{})

	tests := []struct {
		name string
		req  Request
		ok   bool
	}{
		{name: "single day", req: Request{From: "2025-03-10", To: "2025-03-10"}, ok: true},
		{name: "62 days", req: Request{From: "2025-01-01", To: "2025-03-03"}, ok: true},
		{name: "63 days", req: Request{From: "2025-01-01", To: "2025-03-04"}},
		{name: "reversed", req: Request{From: "2025-03-10", To: "2025-03-09"}},
		{name: "bad from", req: Request{From: "10-03-2025", To: "2025-03-10"}},
		{name: "missing to", req: Request{From: "2025-03-10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestUseCase_StoreError(t *testing.T) {
	uc := newUseCase(&fakeAppointments{err: errors.New("boom")}, &fakeBlocks{})

	_, err := uc.Execute(context.Background(), &Request{From: "2025-03-10", To: "2025-03-10"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_ReadsInOneTransaction(t *testing.T) {
	tx := &readOnlyTx{}
	uc := newUseCaseWithTx(&fakeAppointments{}, &fakeBlocks{}, tx)

	_, err := uc.Execute(context.Background(), &Request{From: "2025-03-10", To: "2025-03-11"})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
}

func TestUseCase_TransactionError(t *testing.T) {
	uc := newUseCaseWithTx(&fakeAppointments{}, &fakeBlocks{}, &readOnlyTx{err: errors.New("begin failed")})

	_, err := uc.Execute(context.Background(), &Request{From: "2025-03-10", To: "2025-03-10"})
	assert.ErrorIs(t, err, ErrInternal)
}
