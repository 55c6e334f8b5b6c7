package blocking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	blockingRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/blocking"
	"github.com/santilopez19/TurneroPremium/internal/service/blocking/models"
	"github.com/santilopez19/TurneroPremium/pkg/clock"
	"github.com/santilopez19/TurneroPremium/pkg/logger"
	"github.com/santilopez19/TurneroPremium/pkg/ptr"
	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// memoryBlocks повторяет логику репозитория: повторная блокировка реактивирует строку
type memoryBlocks struct {
	dates   map[string]*domain.BlockedDate
	slots   map[string]*domain.BlockedTimeSlot
	listErr error
}

func newMemoryBlocks() *memoryBlocks {
	return &memoryBlocks{
		dates: make(map[string]*domain.BlockedDate),
		slots: make(map[string]*domain.BlockedTimeSlot),
	}
}

func (m *memoryBlocks) BlockDate(_ context.Context, date string, reason *string) (*domain.BlockedDate, error) {
	b, ok := m.dates[date]
	if !ok {
		b = &domain.BlockedDate{ID: int64(len(m.dates) + 1), Date: date}
		m.dates[date] = b
	}
	b.Reason = reason
	b.Active = true
	copied := *b
	return &copied, nil
}

func (m *memoryBlocks) UnblockDate(_ context.Context, date string) error {
	b, ok := m.dates[date]
	if !ok || !b.Active {
		return blockingRepo.ErrBlockNotFound
	}
	b.Active = false
	return nil
}

func (m *memoryBlocks) ListActiveDates(_ context.Context, from, to string) ([]*domain.BlockedDate, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*domain.BlockedDate
	for _, b := range m.dates {
		if b.Active && (from == "" || b.Date >= from) && (to == "" || b.Date <= to) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *memoryBlocks) BlockTimeSlot(_ context.Context, date string, at types.TimeString, reason *string) (*domain.BlockedTimeSlot, error) {
	key := date + " " + at.String()
	b, ok := m.slots[key]
	if !ok {
		b = &domain.BlockedTimeSlot{ID: int64(len(m.slots) + 1), Date: date, Time: at}
		m.slots[key] = b
	}
	b.Reason = reason
	b.Active = true
	copied := *b
	return &copied, nil
}

func (m *memoryBlocks) UnblockTimeSlot(_ context.Context, date string, at types.TimeString) error {
	b, ok := m.slots[date+" "+at.String()]
	if !ok || !b.Active {
		return blockingRepo.ErrBlockNotFound
	}
	b.Active = false
	return nil
}

func (m *memoryBlocks) ListActiveTimeSlots(_ context.Context, from, to string) ([]*domain.BlockedTimeSlot, error) {
	var result []*domain.BlockedTimeSlot
	for _, b := range m.slots {
		if b.Active && (from == "" || b.Date >= from) && (to == "" || b.Date <= to) {
			result = append(result, b)
		}
	}
	return result, nil
}

func newService(repo *memoryBlocks) *Service {
	return NewService(repo, clock.New(time.UTC), logger.NewNop())
}

func TestService_BlockAndUnblockDate(t *testing.T) {
	repo := newMemoryBlocks()
	svc := newService(repo)
	ctx := context.Background()

	resp, err := svc.BlockDate(ctx, &models.BlockDateRequest{Date: "2025-12-25", Reason: ptr.Ptr("  Navidad ")})
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", resp.Date)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "Navidad", *resp.Reason)

	require.NoError(t, svc.UnblockDate(ctx, "2025-12-25"))
	assert.ErrorIs(t, svc.UnblockDate(ctx, "2025-12-25"), ErrBlockNotFound)

	// повторная блокировка реактивирует день с новой причиной
	resp, err = svc.BlockDate(ctx, &models.BlockDateRequest{Date: "2025-12-25", Reason: ptr.Ptr("Feriado")})
	require.NoError(t, err)
	assert.Equal(t, "Feriado", *resp.Reason)
	assert.Len(t, repo.dates, 1)
}

func TestService_BlockDate_EmptyReasonIsNil(t *testing.T) {
	svc := newService(newMemoryBlocks())

	resp, err := svc.BlockDate(context.Background(), &models.BlockDateRequest{Date: "2025-12-25", Reason: ptr.Ptr("   ")})
	require.NoError(t, err)
	assert.Nil(t, resp.Reason)
}

func TestService_BlockTimeSlot(t *testing.T) {
	svc := newService(newMemoryBlocks())
	ctx := context.Background()

	resp, err := svc.BlockTimeSlot(ctx, &models.BlockTimeSlotRequest{Date: "2025-03-10", Time: "14:30"})
	require.NoError(t, err)
	assert.Equal(t, "14:30", resp.Time)

	require.NoError(t, svc.UnblockTimeSlot(ctx, "2025-03-10", "14:30"))
	assert.ErrorIs(t, svc.UnblockTimeSlot(ctx, "2025-03-10", "14:30"), ErrBlockNotFound)
}

func TestService_Validation(t *testing.T) {
	svc := newService(newMemoryBlocks())
	ctx := context.Background()

	_, err := svc.BlockDate(ctx, &models.BlockDateRequest{Date: "25/12/2025"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.BlockDate(ctx, &models.BlockDateRequest{Date: "2025-12-25", Reason: ptr.Ptr(strings.Repeat("x", 201))})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.BlockTimeSlot(ctx, &models.BlockTimeSlotRequest{Date: "2025-03-10", Time: "25:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.ErrorIs(t, svc.UnblockTimeSlot(ctx, "2025-03-10", "bad"), ErrInvalidInput)

	_, err = svc.ListBlocks(ctx, &models.ListBlocksRequest{From: ptr.Ptr("2025-03-10"), To: ptr.Ptr("2025-03-01")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListBlocks(t *testing.T) {
	repo := newMemoryBlocks()
	svc := newService(repo)
	ctx := context.Background()

	_, err := svc.BlockDate(ctx, &models.BlockDateRequest{Date: "2025-03-01"})
	require.NoError(t, err)
	_, err = svc.BlockDate(ctx, &models.BlockDateRequest{Date: "2025-04-01"})
	require.NoError(t, err)
	_, err = svc.BlockTimeSlot(ctx, &models.BlockTimeSlotRequest{Date: "2025-03-10", Time: "09:00"})
	require.NoError(t, err)
	require.NoError(t, svc.UnblockDate(ctx, "2025-04-01"))

	resp, err := svc.ListBlocks(ctx, &models.ListBlocksRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, "2025-03-01", resp.Dates[0].Date)
	require.Len(t, resp.TimeSlots, 1)

	resp, err = svc.ListBlocks(ctx, &models.ListBlocksRequest{From: ptr.Ptr("2025-03-05")})
	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
	assert.Len(t, resp.TimeSlots, 1)

	repo.listErr = errors.New("boom")
	_, err = svc.ListBlocks(ctx, nil)
	assert.ErrorIs(t, err, ErrInternal)
}
