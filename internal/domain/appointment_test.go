package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelToken(t *testing.T) {
	hexToken := regexp.MustCompile(`^[0-9a-f]{24}$`)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		token, err := NewCancelToken()
		require.NoError(t, err)
		assert.Regexp(t, hexToken, token)
		assert.False(t, seen[token], "token repeated")
		seen[token] = true
	}
}

func TestParseAppointmentStatus(t *testing.T) {
	status, err := ParseAppointmentStatus("ready")
	require.NoError(t, err)
	assert.Equal(t, StatusReady, status)

	_, err = ParseAppointmentStatus("pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAppointment_FullName(t *testing.T) {
	a := &Appointment{FirstName: "Juan", LastName: "Pérez"}
	assert.Equal(t, "Juan Pérez", a.FullName())
	assert.True(t, a.IsActive())

	a.Status = StatusCanceled
	assert.False(t, a.IsActive())
	assert.True(t, a.IsCanceled())
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+5491123456789", NormalizePhone(" +54 9 (11) 2345-6789 "))
	assert.Equal(t, "1123456789", NormalizePhone("11.2345.6789"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("12345678"))
	assert.True(t, IsValidPhone("+5491123456789"))
	assert.False(t, IsValidPhone("1234567"), "shorter than 8")
	assert.False(t, IsValidPhone("123456789012345678901"), "longer than 20")
	assert.False(t, IsValidPhone("12345abc"))
	assert.False(t, IsValidPhone("1234+5678"))
}
