package reporterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Month and year are required and must be valid",
		http.StatusBadRequest,
	)
	ErrOrganizationRequired = apperror.New(
		apperror.CodeForbidden,
		"Reports are only available to organization accounts",
		http.StatusForbidden,
	)
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)
	ErrStorageUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Document storage is not available",
		http.StatusServiceUnavailable,
	)
)
