package authtoken

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	issuer, err := NewIssuer("secret", 12*time.Hour)
	require.NoError(t, err)
	issuer.WithClock(func() time.Time { return now })

	token, expiresAt, err := issuer.Issue("admin@turnero.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, now.Add(12*time.Hour), expiresAt)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@turnero.com", claims.Sub)
	assert.Equal(t, "admin", claims.Role)
}

func TestIssuer_RejectsExpired(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	issuer, err := NewIssuer("secret", time.Hour)
	require.NoError(t, err)
	issuer.WithClock(func() time.Time { return now })

	token, _, err := issuer.Issue("admin", "admin")
	require.NoError(t, err)

	issuer.WithClock(func() time.Time { return now.Add(2 * time.Hour) })
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewIssuer("secret", time.Hour)
	require.NoError(t, err)
	other, err := NewIssuer("other-secret", time.Hour)
	require.NoError(t, err)

	token, _, err := other.Issue("admin", "admin")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	parts := strings.Split(token, ".")
	_, err = issuer.Verify(parts[0] + "." + parts[1] + ".")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewIssuer_EmptySecret(t *testing.T) {
	_, err := NewIssuer("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
