package domain

import (
	"fmt"
	"strings"
	"time"
)

// MessageTemplates параметры текстов уведомлений клиенту
type MessageTemplates struct {
	BusinessName string
	PublicURL    string // адрес фронтенда; пусто - ссылка отмены не добавляется
	Location     *time.Location
}

// ReminderMessage текст напоминания о записи
func (m MessageTemplates) ReminderMessage(a *Appointment) string {
	at := a.DateTime
	if m.Location != nil {
		at = at.In(m.Location)
	}

	msg := fmt.Sprintf("¡Hola %s! Te recordamos tu turno en %s a las %s. Te esperamos.",
		a.FirstName, m.BusinessName, at.Format(TimeFormat))

	if link := m.CancelLink(a); link != "" {
		msg += "\nSi no podés venir, cancelá tu turno acá: " + link
	}
	return msg
}

// ReadyMessage текст уведомления о готовности
func (m MessageTemplates) ReadyMessage(a *Appointment) string {
	return fmt.Sprintf("¡Hola %s! Tu %s ya está listo en %s. Podés pasar a retirarlo. ¡Gracias!",
		a.FirstName, a.ServiceDescriptor, m.BusinessName)
}

// CancelLink ссылка самостоятельной отмены записи
func (m MessageTemplates) CancelLink(a *Appointment) string {
	if m.PublicURL == "" || a.CancelToken == "" {
		return ""
	}
	return strings.TrimRight(m.PublicURL, "/") + "/cancel/" + a.CancelToken
}
