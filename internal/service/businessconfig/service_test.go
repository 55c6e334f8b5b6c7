package businessconfig

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	configRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/businessconfig"
	"github.com/santilopez19/TurneroPremium/internal/service/businessconfig/models"
	"github.com/santilopez19/TurneroPremium/pkg/clock"
	"github.com/santilopez19/TurneroPremium/pkg/logger"
	"github.com/santilopez19/TurneroPremium/pkg/ptr"
)

type fakeRepo struct {
	stored  *domain.BusinessConfig
	getErr  error
	upserts int
}

func (r *fakeRepo) Get(context.Context) (*domain.BusinessConfig, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.stored == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	copied := *r.stored
	return &copied, nil
}

func (r *fakeRepo) Upsert(_ context.Context, cfg *domain.BusinessConfig) (*domain.BusinessConfig, error) {
	r.upserts++
	copied := *cfg
	copied.UpdatedAt = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	r.stored = &copied
	return &copied, nil
}

func newService(repo *fakeRepo) *Service {
	return NewService(repo, clock.New(time.UTC), logger.NewNop())
}

func TestService_Get_DefaultsWhenNothingStored(t *testing.T) {
	svc := newService(&fakeRepo{})

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBusinessConfig(), cfg)

	resp, err := svc.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, resp.OpenDays)
	assert.Equal(t, "08:30", resp.OpenTime)
	assert.Equal(t, "UTC", resp.Timezone)
	assert.Nil(t, resp.UpdatedAt)
}

func TestService_Get_RepositoryError(t *testing.T) {
	svc := newService(&fakeRepo{getErr: errors.New("timeout")})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Update(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo)

	resp, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		OpenDays:            []int{6, 1},
		SlotDurationMinutes: ptr.Ptr(30),
		MaxPerSlot:          ptr.Ptr(3),
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 6}, resp.OpenDays)
	assert.Equal(t, "08:30", resp.OpenTime)
	assert.Equal(t, "18:30", resp.CloseTime)
	assert.Equal(t, 30, resp.SlotDurationMinutes)
	assert.Equal(t, 3, resp.MaxPerSlot)
	assert.NotNil(t, resp.UpdatedAt)
	assert.Equal(t, 1, repo.upserts)
}

func TestService_Update_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.UpdateConfigRequest
		ok   bool
	}{
		{name: "duration lower bound", req: models.UpdateConfigRequest{SlotDurationMinutes: ptr.Ptr(15)}, ok: true},
		{name: "duration upper bound", req: models.UpdateConfigRequest{SlotDurationMinutes: ptr.Ptr(240)}, ok: true},
		{name: "duration too short", req: models.UpdateConfigRequest{SlotDurationMinutes: ptr.Ptr(14)}},
		{name: "duration too long", req: models.UpdateConfigRequest{SlotDurationMinutes: ptr.Ptr(241)}},
		{name: "capacity lower bound", req: models.UpdateConfigRequest{MaxPerSlot: ptr.Ptr(1)}, ok: true},
		{name: "capacity upper bound", req: models.UpdateConfigRequest{MaxPerSlot: ptr.Ptr(10)}, ok: true},
		{name: "capacity zero", req: models.UpdateConfigRequest{MaxPerSlot: ptr.Ptr(0)}},
		{name: "capacity eleven", req: models.UpdateConfigRequest{MaxPerSlot: ptr.Ptr(11)}},
		{name: "open equals close", req: models.UpdateConfigRequest{OpenTime: ptr.Ptr("10:00"), CloseTime: ptr.Ptr("10:00")}},
		{name: "open after close", req: models.UpdateConfigRequest{OpenTime: ptr.Ptr("19:00")}},
		{name: "malformed time", req: models.UpdateConfigRequest{OpenTime: ptr.Ptr("9am")}},
		{name: "no open days", req: models.UpdateConfigRequest{OpenDays: []int{}}},
		{name: "weekday out of range", req: models.UpdateConfigRequest{OpenDays: []int{7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := newService(repo)

			_, err := svc.Update(context.Background(), &tt.req)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, repo.upserts)
		})
	}
}
