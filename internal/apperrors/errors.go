package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates a missing or invalid credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidAmount indicates a candidate transaction whose amount is missing
// or not parseable as a decimal. Nothing is written to the log.
var ErrInvalidAmount = errors.New("invalid transaction amount")

// ErrUnknownKind indicates a candidate transaction whose type is not one of
// the seven user-facing kinds. Nothing is written to the log.
var ErrUnknownKind = errors.New("unknown transaction kind")

// ErrClassification indicates the external classifier failed or returned
// output that could not be parsed. The recorder is never invoked.
var ErrClassification = errors.New("classification failed")

// ErrStorage indicates a failure reading or writing the entry log. Read
// failures surface as "aggregation unavailable"; write failures are reported
// to the caller, never silently dropped.
var ErrStorage = errors.New("storage failure")

// ErrPartialTransfer indicates that only one half of a transfer pair is
// persisted. The pair write runs in a single database transaction, so this is
// a data-integrity signal for externally injected rows, not a normal outcome.
var ErrPartialTransfer = errors.New("partial transfer pair write")

// AppError wraps a lower-level error with an HTTP-ish status code and a
// message safe to log.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError constructs an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
