package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation    = errors.New("request validation failed")
	ErrBadRequest    = errors.New("malformed request")
	ErrUnauthorized  = errors.New("authentication required")
	ErrForbidden     = errors.New("operation not allowed")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("resource conflict")
	ErrMethod        = errors.New("method not allowed")
	ErrTimeout       = errors.New("request timed out")
	ErrInternal      = errors.New("an unexpected error occurred")
)

// FieldError names one offending input field and why it was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type ApiErr struct {
	StatusCode int
	Code       string
	err        error
	message    string
	Fields     []FieldError
	Cause      error // logged, never sent to clients
}

func (e *ApiErr) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.err.Error(), e.Cause)
	}
	return e.err.Error()
}

// Message is the client-facing text; it never includes the cause.
func (e *ApiErr) Message() string {
	if e.message != "" {
		return e.message
	}
	return e.err.Error()
}

// errors.Is(err, ErrNotFound) holds for any not-found ApiErr
func (e *ApiErr) Unwrap() error {
	return e.err
}

func NewValidationError(fields ...FieldError) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, Code: "validation_error", err: ErrValidation, Fields: fields}
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, Code: "bad_request", err: fmt.Errorf("%s: %w", message, ErrBadRequest), message: message}
}

// NewUnauthorizedError carries the same message for every credential failure.
func NewUnauthorizedError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, Code: "unauthorized", err: ErrUnauthorized}
}

func NewForbiddenError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusForbidden, Code: "forbidden", err: fmt.Errorf("%s: %w", message, ErrForbidden), message: message}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, Code: "not_found", err: fmt.Errorf("%s %w", entity, ErrNotFound)}
}

// NewAlreadyExists reports a uniqueness conflict, naming the conflicting field when known.
func NewAlreadyExists(entity, field string) *ApiErr {
	err := fmt.Errorf("%s %w", entity, ErrAlreadyExists)
	if field != "" {
		err = fmt.Errorf("%s with this %s %w", entity, field, ErrAlreadyExists)
	}
	return &ApiErr{StatusCode: http.StatusConflict, Code: "conflict", err: err}
}

func NewConflictError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusConflict, Code: "conflict", err: fmt.Errorf("%s: %w", message, ErrConflict), message: message}
}

func NewMethodNotAllowed(method string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusMethodNotAllowed, Code: "method_not_allowed", err: fmt.Errorf("%s: %w", method, ErrMethod), message: ErrMethod.Error()}
}

func NewTimeoutError(cause error) *ApiErr {
	return &ApiErr{StatusCode: http.StatusRequestTimeout, Code: "timeout", err: ErrTimeout, Cause: cause}
}

func NewInternalErrorWithCause(cause error) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, Code: "internal_error", err: ErrInternal, Cause: cause}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists) || errors.Is(err, ErrConflict)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
