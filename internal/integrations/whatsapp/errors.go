package whatsapp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе Twilio
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")

	// ErrInvalidPhone номер нельзя привести к международному формату
	ErrInvalidPhone = errors.New("whatsapp client: invalid phone")

	// ErrUnauthorized Twilio отклонил учетные данные
	ErrUnauthorized = errors.New("whatsapp client: unauthorized")

	// ErrRateLimited Twilio ограничил частоту запросов
	ErrRateLimited = errors.New("whatsapp client: rate limited")

	// ErrRejected Twilio отклонил сообщение (неверный номер, не подключен sandbox и т.п.)
	ErrRejected = errors.New("whatsapp client: message rejected")
)
