package archive_appointments

import "errors"

var (
	// ErrInternal возвращается при ошибке обновления записей
	ErrInternal = errors.New("archive_appointments: internal error")
)
