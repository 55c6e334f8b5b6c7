package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые обрабатываются явно
const (
	CodeUniqueViolation      pq.ErrorCode = "23505"
	CodeSerializationFailure pq.ErrorCode = "40001"
	CodeDeadlockDetected     pq.ErrorCode = "40P01"
)

// ErrSerialization конфликт сериализуемых транзакций, операцию можно повторить
var ErrSerialization = errors.New("pgerrors: serialization failure")

// IsSerializationFailure возвращает true для конфликтов сериализации и дедлоков
func IsSerializationFailure(err error) bool {
	if errors.Is(err, ErrSerialization) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == CodeSerializationFailure || pqErr.Code == CodeDeadlockDetected
	}
	return false
}

// UniqueViolation возвращает имя нарушенного ограничения уникальности
func UniqueViolation(err error) (constraint string, ok bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == CodeUniqueViolation {
		return pqErr.Constraint, true
	}
	return "", false
}
