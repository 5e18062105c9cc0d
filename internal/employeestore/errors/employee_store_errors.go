package employeestoreerrors

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
	ErrInvalidEmployeeName = apperror.New(
		apperror.CodeInvalidInput,
		"Employee name cannot be blank",
		http.StatusBadRequest,
	)
)
