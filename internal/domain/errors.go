package domain

import "errors"

var (
	// ErrInvalidConfig конфигурация расписания нарушает ограничения
	ErrInvalidConfig = errors.New("domain: invalid business config")

	// ErrInvalidStatus неизвестный статус записи
	ErrInvalidStatus = errors.New("domain: invalid appointment status")
)
