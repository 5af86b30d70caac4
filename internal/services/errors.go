package services

import (
	"errors"
	"fmt"
	"net/http"

	"spread/internal/refs"
	"spread/internal/store"
)

// Intent failure codes. Duplicate set insertions are deliberately not
// here: per the idempotency contract they are reported as no-op
// successes, never as errors.
const (
	CodeNotFound         = "not_found"
	CodeMissingReference = "missing_reference"
	CodeBrokenChain      = "broken_chain"
	CodeValidationFailed = "validation_failed"
	CodeForbidden        = "forbidden"
	CodeStoreUnavailable = "store_unavailable"
)

// IntentError is the typed failure every intent returns. Status is the
// HTTP status the route layer should answer with; Fields carries
// field-level validation messages.
type IntentError struct {
	Status  int
	Code    string
	Message string
	Fields  map[string]string
}

func (e *IntentError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsIntentError unwraps err into an IntentError if it is one.
func AsIntentError(err error) (*IntentError, bool) {
	var ie *IntentError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}

// IsCode reports whether err is an IntentError with the given code.
func IsCode(err error, code string) bool {
	ie, ok := AsIntentError(err)
	return ok && ie.Code == code
}

func notFound(format string, args ...any) *IntentError {
	return &IntentError{
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

func forbidden(format string, args ...any) *IntentError {
	return &IntentError{
		Status:  http.StatusForbidden,
		Code:    CodeForbidden,
		Message: fmt.Sprintf(format, args...),
	}
}

func validationFailed(message string, fields map[string]string) *IntentError {
	return &IntentError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidationFailed,
		Message: message,
		Fields:  fields,
	}
}

// translate maps lower-layer failures onto the intent taxonomy at the
// facade boundary. IntentErrors pass through untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsIntentError(err); ok {
		return err
	}

	var missing *refs.MissingReferenceError
	if errors.As(err, &missing) {
		return &IntentError{
			Status:  http.StatusUnprocessableEntity,
			Code:    CodeMissingReference,
			Message: missing.Error(),
		}
	}
	var broken *refs.BrokenChainError
	if errors.As(err, &broken) {
		return &IntentError{
			Status:  http.StatusUnprocessableEntity,
			Code:    CodeBrokenChain,
			Message: broken.Error(),
		}
	}
	if errors.Is(err, store.ErrNotFound) {
		return notFound("entity does not exist")
	}
	if errors.Is(err, store.ErrUnavailable) {
		// Transient persistence failure; retry belongs to the caller.
		return &IntentError{
			Status:  http.StatusServiceUnavailable,
			Code:    CodeStoreUnavailable,
			Message: err.Error(),
		}
	}
	return err
}
