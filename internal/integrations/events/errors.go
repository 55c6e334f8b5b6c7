package events

import "errors"

// ErrPublish возвращается, когда событие не удалось отправить
var ErrPublish = errors.New("events: publish failed")
