package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	appointmentRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/appointment"
	blockingRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/blocking"
	"github.com/santilopez19/TurneroPremium/internal/infra/storage/storagetest"
	"github.com/santilopez19/TurneroPremium/internal/usecase/get_availability"
	"github.com/santilopez19/TurneroPremium/pkg/clock"
	"github.com/santilopez19/TurneroPremium/pkg/logger"
	"github.com/santilopez19/TurneroPremium/pkg/simpletxmanager"
)

func newPostgresUseCase(t *testing.T, maxPerSlot int) (*UseCase, *appointmentRepo.Repository) {
	t.Helper()

	db := storagetest.Open(t)
	log := logger.NewNop()
	now := &clock.Fixed{At: time.Date(2025, 3, 9, 10, 0, 0, 0, loc)}

	cfg := domain.DefaultBusinessConfig()
	cfg.MaxPerSlot = maxPerSlot

	appointments := appointmentRepo.NewRepository(db)
	resolver := get_availability.NewUseCase(
		appointments, blockingRepo.NewRepository(db), staticConfig{cfg: cfg}, now, 30, log,
	)
	uc := NewUseCase(
		appointments,
		resolver,
		simpletxmanager.NewTransactionManager(db).WithMaxAttempts(3),
		&recordingPublisher{},
		&countingMetrics{counts: map[string]int{}},
		now,
		log,
	)
	return uc, appointments
}

// Последнее место в слоте достается ровно одному из параллельных клиентов
func TestExecute_PostgresConcurrentLastSeat(t *testing.T) {
	uc, appointments := newPostgresUseCase(t, 2)
	ctx := context.Background()

	_, err := uc.Execute(ctx, request("1199999999", "10:30"))
	require.NoError(t, err)

	const clients = 8
	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		created     int
		unavailable int
		other       []error
	)
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Execute(ctx, request(fmt.Sprintf("11000000%02d", i), "10:30"))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, ErrSlotUnavailable):
				unavailable++
			default:
				other = append(other, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, created)
	assert.Equal(t, clients-1, unavailable)

	active, err := appointments.ListActiveAt(ctx, slotTime("10:30"))
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

// У телефона уже есть запись: из параллельных попыток на другие слоты проходит ровно одна
func TestExecute_PostgresConcurrentDailyLimit(t *testing.T) {
	uc, appointments := newPostgresUseCase(t, 5)
	ctx := context.Background()

	const phone = "1100000001"
	_, err := uc.Execute(ctx, request(phone, "08:30"))
	require.NoError(t, err)

	slots := []string{"09:30", "10:30", "11:30", "12:30", "13:30"}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		created  int
		rejected int
		other    []error
	)
	for _, at := range slots {
		wg.Add(1)
		go func(at string) {
			defer wg.Done()
			_, err := uc.Execute(ctx, request(phone, at))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, ErrDailyLimitExceeded), errors.Is(err, ErrSlotUnavailable):
				rejected++
			default:
				other = append(other, err)
			}
		}(at)
	}
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, created)
	assert.Equal(t, len(slots)-1, rejected)

	list, err := appointments.ListActiveByPhoneOnDate(ctx, domain.NormalizePhone(phone), monday)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
