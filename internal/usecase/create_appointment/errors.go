package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrSlotUnavailable слот заблокирован, прошел, заполнен или занят параллельной записью
	ErrSlotUnavailable = errors.New("create_appointment: slot is not available")

	// ErrDailyLimitExceeded у телефона уже две активные записи на этот день
	ErrDailyLimitExceeded = errors.New("create_appointment: daily limit per phone exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// Метки результата для метрик
const (
	resultCreated    = "created"
	resultInvalid    = "invalid"
	resultSlot       = "slot_unavailable"
	resultDailyLimit = "daily_limit"
	resultError      = "error"
)
