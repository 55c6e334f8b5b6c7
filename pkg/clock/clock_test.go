package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_NowInLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	c := New(loc)

	assert.Equal(t, loc, c.Location())
	assert.Equal(t, loc, c.Now().Location())
}

func TestClock_NilLocationIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, New(nil).Location())
}

func TestFixed(t *testing.T) {
	at := time.Date(2025, 3, 10, 12, 15, 0, 0, time.UTC)
	f := &Fixed{At: at}

	assert.Equal(t, at, f.Now())
	assert.Equal(t, time.UTC, f.Location())
}
