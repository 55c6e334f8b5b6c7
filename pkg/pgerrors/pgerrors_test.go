package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(&pq.Error{Code: CodeSerializationFailure}))
	assert.True(t, IsSerializationFailure(fmt.Errorf("commit: %w", &pq.Error{Code: CodeDeadlockDetected})))
	assert.True(t, IsSerializationFailure(fmt.Errorf("%w: insert", ErrSerialization)))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: CodeUniqueViolation}))
	assert.False(t, IsSerializationFailure(errors.New("boom")))
}

func TestUniqueViolation(t *testing.T) {
	constraint, ok := UniqueViolation(&pq.Error{Code: CodeUniqueViolation, Constraint: "appointments_slot_seat_uq"})
	assert.True(t, ok)
	assert.Equal(t, "appointments_slot_seat_uq", constraint)

	_, ok = UniqueViolation(&pq.Error{Code: CodeSerializationFailure})
	assert.False(t, ok)
}
