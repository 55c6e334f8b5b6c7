package businessconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/pkg/dbmetrics"
	"github.com/santilopez19/TurneroPremium/pkg/psqlbuilder"
)

const table = "business_config"

// singletonID единственная строка конфигурации
const singletonID = 1

// Repository репозиторий конфигурации расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает сохраненную конфигурацию или ErrConfigNotFound
func (r *Repository) Get(ctx context.Context) (*domain.BusinessConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"open_days",
		"open_time",
		"close_time",
		"slot_duration_minutes",
		"max_per_slot",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		cfg       domain.BusinessConfig
		openDays  pq.Int64Array
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&openDays,
		&cfg.OpenTime,
		&cfg.CloseTime,
		&cfg.SlotDurationMinutes,
		&cfg.MaxPerSlot,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	cfg.OpenDays, err = toWeekdays(openDays)
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrScanRow, err)
	}
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Upsert сохраняет конфигурацию, заменяя предыдущую
func (r *Repository) Upsert(ctx context.Context, cfg *domain.BusinessConfig) (*domain.BusinessConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	days := make([]int64, 0, len(cfg.OpenDays))
	for _, d := range cfg.SortedOpenDays() {
		days = append(days, int64(d))
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"open_days",
			"open_time",
			"close_time",
			"slot_duration_minutes",
			"max_per_slot",
		).
		Values(
			singletonID,
			pq.Array(days),
			cfg.OpenTime,
			cfg.CloseTime,
			cfg.SlotDurationMinutes,
			cfg.MaxPerSlot,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			open_days = EXCLUDED.open_days,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			max_per_slot = EXCLUDED.max_per_slot,
			updated_at = NOW()
			RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt time.Time
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	saved := *cfg
	saved.OpenDays = cfg.SortedOpenDays()
	saved.UpdatedAt = updatedAt

	return &saved, nil
}

func toWeekdays(values []int64) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(values))
	for _, v := range values {
		if v < int64(time.Sunday) || v > int64(time.Saturday) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidOpenDay, v)
		}
		days = append(days, time.Weekday(v))
	}
	return days, nil
}
