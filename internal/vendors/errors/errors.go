package vendorerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrVendorNotFound = apperror.New(
		apperror.CodeNotFound,
		"Vendor not found",
		http.StatusNotFound,
	)
	ErrVendorAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Vendor with the same name already exists in this organization",
		http.StatusConflict,
	)
	ErrInvalidVendorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid vendor ID",
		http.StatusBadRequest,
	)
)
