package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrUpstream = New(
		CodeUpstreamError,
		"Upstream service request failed",
		http.StatusBadGateway,
	)

	ErrContractViolation = New(
		CodeContractViolation,
		"Upstream service returned an unexpected response",
		http.StatusInternalServerError,
	)
)

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}

func BlankField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s cannot be blank", field), http.StatusBadRequest)
}

func OutOfRangeField(field, rule string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s must be %s", field, rule), http.StatusBadRequest)
}
