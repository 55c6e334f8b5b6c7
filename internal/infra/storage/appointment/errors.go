package appointment

import (
	"errors"
	"fmt"

	"github.com/santilopez19/TurneroPremium/pkg/pgerrors"
)

// Имена частичных уникальных индексов, на которых держатся ограничения бронирования
const (
	SlotSeatConstraint  = "appointments_slot_seat_uq"
	DailySeatConstraint = "appointments_daily_seat_uq"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrAppointmentNotActive запись отменена или уже в архиве
	ErrAppointmentNotActive = errors.New("appointment.repository: appointment is not active")

	// ErrSlotTaken место в слоте уже занято параллельной записью
	ErrSlotTaken = errors.New("appointment.repository: slot seat already taken")

	// ErrDailySeatTaken у телефона уже есть запись с таким номером за день
	ErrDailySeatTaken = errors.New("appointment.repository: daily seat already taken")

	// ErrConcurrentUpdate конфликт сериализуемых транзакций, операцию можно повторить
	ErrConcurrentUpdate = fmt.Errorf("appointment.repository: concurrent update: %w", pgerrors.ErrSerialization)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)

// classify переводит ошибку драйвера в ошибку репозитория
func classify(method, step string, err error) error {
	if constraint, ok := pgerrors.UniqueViolation(err); ok {
		switch constraint {
		case SlotSeatConstraint:
			return fmt.Errorf("%w: %s - %s: %v", ErrSlotTaken, method, step, err)
		case DailySeatConstraint:
			return fmt.Errorf("%w: %s - %s: %v", ErrDailySeatTaken, method, step, err)
		}
	}
	if pgerrors.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s - %s: %v", ErrConcurrentUpdate, method, step, err)
	}
	return fmt.Errorf("%w: %s - %s: %v", ErrExecQuery, method, step, err)
}
