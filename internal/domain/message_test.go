package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMessageTemplates(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	a := &Appointment{
		FirstName:         "Lucía",
		ServiceDescriptor: "AB123CD",
		DateTime:          time.Date(2025, 3, 10, 13, 30, 0, 0, time.UTC),
		CancelToken:       "abc123",
	}

	m := MessageTemplates{BusinessName: "Lavadero", Location: loc}

	assert.Equal(t, "¡Hola Lucía! Te recordamos tu turno en Lavadero a las 10:30. Te esperamos.", m.ReminderMessage(a))
	assert.Equal(t, "¡Hola Lucía! Tu AB123CD ya está listo en Lavadero. Podés pasar a retirarlo. ¡Gracias!", m.ReadyMessage(a))
	assert.Empty(t, m.CancelLink(a))

	m.PublicURL = "https://turnos.example.com/"
	assert.Equal(t, "https://turnos.example.com/cancel/abc123", m.CancelLink(a))
	assert.Contains(t, m.ReminderMessage(a), "https://turnos.example.com/cancel/abc123")
}
