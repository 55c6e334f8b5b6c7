package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/pkg/dbmetrics"
	"github.com/santilopez19/TurneroPremium/pkg/psqlbuilder"
)

const table = "appointments"

var columns = []string{
	"id",
	"first_name",
	"last_name",
	"phone",
	"service_descriptor",
	"date_time",
	"to_char(local_date, 'YYYY-MM-DD')",
	"status",
	"cancel_token",
	"reminder_sent",
	"reminder_sent_at",
	"ready_at",
	"attended",
	"slot_seq",
	"day_seq",
	"created_at",
	"updated_at",
}

// activeOnly записи, которые занимают место в слоте
var activeOnly = squirrel.NotEq{"status": domain.StatusCanceled}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись
// Если ID не задан, генерируется UUID. Нарушение уникальности места в слоте
// возвращается как ErrSlotTaken, места телефона за день как ErrDailySeatTaken.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"first_name",
			"last_name",
			"phone",
			"service_descriptor",
			"date_time",
			"local_date",
			"status",
			"cancel_token",
			"reminder_sent",
			"attended",
			"slot_seq",
			"day_seq",
		).
		Values(
			a.ID,
			a.FirstName,
			a.LastName,
			a.Phone,
			a.ServiceDescriptor,
			a.DateTime,
			a.LocalDate,
			a.Status,
			a.CancelToken,
			a.ReminderSent,
			a.Attended,
			a.SlotSeq,
			a.DaySeq,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, classify("Create", "execute insert", err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrAppointmentNotFound
	}
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByToken получает запись по токену отмены
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Appointment, error) {
	return r.getOne(ctx, "GetByToken", squirrel.Eq{"cancel_token": token})
}

// ListActiveAt возвращает неотмененные записи на конкретное время начала
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) ListActiveAt(ctx context.Context, dateTime time.Time) ([]*domain.Appointment, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"date_time": dateTime}).
		Where(activeOnly).
		OrderBy("slot_seq ASC")

	return r.list(ctx, "ListActiveAt", builder, true)
}

// ListActiveByPhoneOnDate возвращает неотмененные записи телефона за календарный день
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) ListActiveByPhoneOnDate(ctx context.Context, phone, localDate string) ([]*domain.Appointment, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"phone": phone, "local_date": localDate}).
		Where(activeOnly).
		OrderBy("day_seq ASC")

	return r.list(ctx, "ListActiveByPhoneOnDate", builder, true)
}

// ListActiveOnDates возвращает неотмененные записи за диапазон календарных дней (включительно)
func (r *Repository) ListActiveOnDates(ctx context.Context, fromDate, toDate string) ([]*domain.Appointment, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"local_date": fromDate}).
		Where(squirrel.LtOrEq{"local_date": toDate}).
		Where(activeOnly).
		OrderBy("date_time ASC")

	return r.list(ctx, "ListActiveOnDates", builder, false)
}

// List возвращает записи в диапазоне [From, To) по возрастанию времени, при Status только с этим статусом
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("date_time ASC", "created_at ASC")

	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"date_time": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"date_time": *filter.To})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	return r.list(ctx, "List", builder, false)
}

// ListDueForReminder возвращает записи в окне [from, to], по которым напоминание еще не отправлено
func (r *Repository) ListDueForReminder(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(activeOnly).
		Where(squirrel.Eq{"reminder_sent": false}).
		Where(squirrel.GtOrEq{"date_time": from}).
		Where(squirrel.LtOrEq{"date_time": to}).
		OrderBy("date_time ASC")

	return r.list(ctx, "ListDueForReminder", builder, false)
}

// CancelByToken отменяет запись, если она еще не отменена
// Возвращает false, если запись уже была отменена (или не найдена)
func (r *Repository) CancelByToken(ctx context.Context, token string) (bool, error) {
	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.StatusCanceled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"cancel_token": token}).
		Where(activeOnly).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CancelByToken - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffected(ctx, "CancelByToken", query, args)
}

// MarkReady переводит запись в статус ready и отмечает посещение
// Отмененные и архивные записи не меняются: ErrAppointmentNotActive
func (r *Repository) MarkReady(ctx context.Context, id string, at time.Time) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrAppointmentNotFound
	}

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.StatusReady).
		Set("ready_at", at).
		Set("attended", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": []domain.AppointmentStatus{domain.StatusBooked, domain.StatusReady}}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkReady - build update query: %v", ErrBuildQuery, err)
	}

	changed, err := r.execAffected(ctx, "MarkReady", query, args)
	if err != nil {
		return err
	}
	if changed {
		return nil
	}

	// Ничего не обновили: записи нет либо она уже не активна
	if _, err := r.getOne(ctx, "MarkReady", squirrel.Eq{"id": id}); err != nil {
		return err
	}
	return ErrAppointmentNotActive
}

// MarkReminderSent отмечает отправку напоминания
// Условие reminder_sent = false не дает двум параллельным проходам отметить запись дважды
func (r *Repository) MarkReminderSent(ctx context.Context, id string, at time.Time) (bool, error) {
	query, args, err := psqlbuilder.Update(table).
		Set("reminder_sent", true).
		Set("reminder_sent_at", at).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "reminder_sent": false}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: MarkReminderSent - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffected(ctx, "MarkReminderSent", query, args)
}

// ArchivePast переводит в done все записи раньше before, которые еще не done
func (r *Repository) ArchivePast(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.StatusDone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Lt{"date_time": before}).
		Where(squirrel.NotEq{"status": domain.StatusDone}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ArchivePast - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classify("ArchivePast", "execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ArchivePast - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) getOne(ctx context.Context, method string, where squirrel.Sqlizer) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, method, err)
	}

	return a, nil
}

func (r *Repository) list(ctx context.Context, method string, builder squirrel.SelectBuilder, lock bool) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if lock && dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(method, "execute query", err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(method, "rows error", err)
	}

	return appointments, nil
}

func (r *Repository) execAffected(ctx context.Context, method, query string, args []interface{}) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, classify(method, "execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	return rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a                    domain.Appointment
		status               string
		reminderSentAt       sql.NullTime
		readyAt              sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Phone,
		&a.ServiceDescriptor,
		&a.DateTime,
		&a.LocalDate,
		&status,
		&a.CancelToken,
		&a.ReminderSent,
		&reminderSentAt,
		&readyAt,
		&a.Attended,
		&a.SlotSeq,
		&a.DaySeq,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Status = domain.AppointmentStatus(status)
	if reminderSentAt.Valid {
		t := reminderSentAt.Time
		a.ReminderSentAt = &t
	}
	if readyAt.Valid {
		t := readyAt.Time
		a.ReadyAt = &t
	}
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}
