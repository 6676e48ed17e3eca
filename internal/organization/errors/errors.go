package organizationerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)
	ErrOrganizationAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Organization with the same email already exists",
		http.StatusConflict,
	)
	ErrOrganizationNotVerified = apperror.New(
		apperror.CodeUnverified,
		"Organization is not verified",
		http.StatusForbidden,
	)
	ErrInvalidOrganizationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid organization ID",
		http.StatusBadRequest,
	)
)
