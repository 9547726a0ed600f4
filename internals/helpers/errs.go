// file: internals/helpers/errs.go
package helper

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

/* =========================
   API error taxonomy
   ========================= */

// ValidationError: caller-fault input error. Fields lists the offending
// field names so the client can highlight them.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// MissingFieldsError: presence check failed; enumerates ALL missing
// required fields in one message.
func MissingFieldsError(fields ...string) *ValidationError {
	return &ValidationError{
		Message: "missing required fields: " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

// NotFoundError: target id/key does not exist. A normal outcome, not a
// failure.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

func NewNotFoundError(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

// StoreError: persistence-layer failure. Underlying message preserved for
// diagnostics; never retried here.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return "store error: " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

func NewStoreError(err error) *StoreError { return &StoreError{Err: err} }

/* =========================
   Outcome → HTTP mapping
   ========================= */

// JsonFromError maps the taxonomy onto the response envelope:
// ValidationError → 400, NotFoundError → 404, anything else → 500.
func JsonFromError(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return JsonValidationError(c, ve.Message, ve.Fields)
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return JsonError(c, http.StatusNotFound, nf.Error())
	}
	var se *StoreError
	if errors.As(err, &se) {
		return JsonError(c, http.StatusInternalServerError, se.Error())
	}
	return JsonError(c, http.StatusInternalServerError, err.Error())
}

// IsDuplicateKey: unique violation (SQLSTATE 23505) from lib/pq or a
// wrapped pgx error; string fallback kept for drivers that stringify.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
