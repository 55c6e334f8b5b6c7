package blocking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/pkg/dbmetrics"
	"github.com/santilopez19/TurneroPremium/pkg/psqlbuilder"
	"github.com/santilopez19/TurneroPremium/pkg/types"
)

const (
	datesTable = "blocked_dates"
	slotsTable = "blocked_time_slots"
)

// Repository репозиторий заблокированных дней и слотов
// Блокировки не удаляются физически: снятие выставляет active = false
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// BlockDate блокирует день; повторная блокировка активирует строку и заменяет причину
func (r *Repository) BlockDate(ctx context.Context, date string, reason *string) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(datesTable).
		Columns("date", "reason", "active").
		Values(date, reason, true).
		Suffix(`ON CONFLICT (date) DO UPDATE SET
			reason = EXCLUDED.reason,
			active = TRUE,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: BlockDate - build insert query: %v", ErrBuildQuery, err)
	}

	block := &domain.BlockedDate{Date: date, Reason: reason, Active: true}
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &block.CreatedAt, &block.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: BlockDate - execute upsert: %v", ErrExecQuery, err)
	}

	return block, nil
}

// UnblockDate снимает блокировку дня
func (r *Repository) UnblockDate(ctx context.Context, date string) error {
	query, args, err := psqlbuilder.Update(datesTable).
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"date": date, "active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UnblockDate - build update query: %v", ErrBuildQuery, err)
	}

	return r.execDeactivate(ctx, "UnblockDate", query, args)
}

// GetActiveDate возвращает активную блокировку дня или ErrBlockNotFound
func (r *Repository) GetActiveDate(ctx context.Context, date string) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dateColumns...).
		From(datesTable).
		Where(squirrel.Eq{"date": date, "active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveDate - build select query: %v", ErrBuildQuery, err)
	}

	block, err := scanBlockedDate(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveDate - scan block: %v", ErrScanRow, err)
	}

	return block, nil
}

// ListActiveDates активные блокировки дней в диапазоне (границы включительно, пустая - без ограничения)
func (r *Repository) ListActiveDates(ctx context.Context, fromDate, toDate string) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(dateColumns...).
		From(datesTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("date ASC")
	builder = withDateRange(builder, fromDate, toDate)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		block, err := scanBlockedDate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveDates - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveDates - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// BlockTimeSlot блокирует слот дня; повторная блокировка активирует строку и заменяет причину
func (r *Repository) BlockTimeSlot(ctx context.Context, date string, at types.TimeString, reason *string) (*domain.BlockedTimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(slotsTable).
		Columns("date", "slot_time", "reason", "active").
		Values(date, at, reason, true).
		Suffix(`ON CONFLICT (date, slot_time) DO UPDATE SET
			reason = EXCLUDED.reason,
			active = TRUE,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: BlockTimeSlot - build insert query: %v", ErrBuildQuery, err)
	}

	block := &domain.BlockedTimeSlot{Date: date, Time: at, Reason: reason, Active: true}
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &block.CreatedAt, &block.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: BlockTimeSlot - execute upsert: %v", ErrExecQuery, err)
	}

	return block, nil
}

// UnblockTimeSlot снимает блокировку слота
func (r *Repository) UnblockTimeSlot(ctx context.Context, date string, at types.TimeString) error {
	query, args, err := psqlbuilder.Update(slotsTable).
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"date": date, "slot_time": at, "active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UnblockTimeSlot - build update query: %v", ErrBuildQuery, err)
	}

	return r.execDeactivate(ctx, "UnblockTimeSlot", query, args)
}

// ListActiveTimeSlots активные блокировки слотов в диапазоне дней (границы включительно, пустая - без ограничения)
func (r *Repository) ListActiveTimeSlots(ctx context.Context, fromDate, toDate string) ([]*domain.BlockedTimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"id",
		"to_char(date, 'YYYY-MM-DD')",
		"to_char(slot_time, 'HH24:MI')",
		"reason",
		"active",
		"created_at",
		"updated_at",
	).
		From(slotsTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("date ASC", "slot_time ASC")
	builder = withDateRange(builder, fromDate, toDate)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveTimeSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveTimeSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedTimeSlot, 0)
	for rows.Next() {
		var (
			block  domain.BlockedTimeSlot
			reason sql.NullString
		)
		if err := rows.Scan(
			&block.ID,
			&block.Date,
			&block.Time,
			&reason,
			&block.Active,
			&block.CreatedAt,
			&block.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListActiveTimeSlots - scan row: %v", ErrScanRow, err)
		}
		block.Reason = nullableString(reason)
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveTimeSlots - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

var dateColumns = []string{
	"id",
	"to_char(date, 'YYYY-MM-DD')",
	"reason",
	"active",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlockedDate(row rowScanner) (*domain.BlockedDate, error) {
	var (
		block  domain.BlockedDate
		reason sql.NullString
	)
	if err := row.Scan(
		&block.ID,
		&block.Date,
		&reason,
		&block.Active,
		&block.CreatedAt,
		&block.UpdatedAt,
	); err != nil {
		return nil, err
	}
	block.Reason = nullableString(reason)
	return &block, nil
}

func (r *Repository) execDeactivate(ctx context.Context, method, query string, args []interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

func withDateRange(builder squirrel.SelectBuilder, fromDate, toDate string) squirrel.SelectBuilder {
	if fromDate != "" {
		builder = builder.Where(squirrel.GtOrEq{"date": fromDate})
	}
	if toDate != "" {
		builder = builder.Where(squirrel.LtOrEq{"date": toDate})
	}
	return builder
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
