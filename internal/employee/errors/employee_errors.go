package employeeerrors

import (
	"go-employee-directory/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Employee ID cannot be blank",
		http.StatusBadRequest,
	)
	ErrEmptyCreateResponse = apperror.New(
		apperror.CodeContractViolation,
		"Failed to create employee: Empty response",
		http.StatusInternalServerError,
	)
	ErrMalformedEnvelope = apperror.New(
		apperror.CodeContractViolation,
		"Upstream returned a malformed response envelope",
		http.StatusInternalServerError,
	)
)
