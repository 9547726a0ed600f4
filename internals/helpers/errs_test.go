// file: internals/helpers/errs_test.go
package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMissingFieldsErrorEnumeratesNames(t *testing.T) {
	err := MissingFieldsError("event_school", "event_title")
	assert.Equal(t, "missing required fields: event_school, event_title", err.Error())
	assert.Equal(t, []string{"event_school", "event_title"}, err.Fields)
}

func TestStoreErrorPreservesUnderlyingMessage(t *testing.T) {
	underlying := errors.New("connection refused")
	err := NewStoreError(underlying)
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, underlying)
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("deadlock detected")))

	assert.True(t, IsDuplicateKey(&pq.Error{Code: "23505"}))
	assert.False(t, IsDuplicateKey(&pq.Error{Code: "23503"}))

	// stringified driver errors still detected
	assert.True(t, IsDuplicateKey(fmt.Errorf(`ERROR: duplicate key value violates unique constraint "day_schedules_pkey" (SQLSTATE 23505)`)))
}
