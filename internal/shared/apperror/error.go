package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

type AppError struct {
	Code       string // Error code (e.g., INVALID_INPUT)
	Message    string // User-friendly message
	HTTPStatus int    // HTTP status code
	Err        error  // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code so wrapped copies of a sentinel still compare equal.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.HTTPStatus == t.HTTPStatus
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// RateLimitedError is returned when the upstream answers 429.
// RetryAfter is zero when the upstream sent no usable Retry-After header.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	msg := "Rate limit exceeded (HTTP 429). For Employees Server"
	if e.RetryAfter > 0 {
		msg += fmt.Sprintf(" Please try again after %d seconds.", int(e.RetryAfter.Seconds()))
	}
	return msg
}

func (e *RateLimitedError) HTTPStatus() int {
	return http.StatusServiceUnavailable
}
