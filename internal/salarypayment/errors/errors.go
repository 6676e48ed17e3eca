package salarypaymenterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrSalaryPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary payment not found",
		http.StatusNotFound,
	)
	ErrInvalidSalaryPaymentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary payment ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month or year",
		http.StatusBadRequest,
	)
	ErrFundRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Fund request not found",
		http.StatusNotFound,
	)
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNotSalaryRequest = apperror.New(
		apperror.CodeInvalidState,
		"Fund request is not a salary disbursement",
		http.StatusConflict,
	)
	ErrNotApproved = apperror.New(
		apperror.CodeInvalidState,
		"Fund request is not approved",
		http.StatusConflict,
	)
	ErrBatchInProgress = apperror.New(
		apperror.CodeInvalidState,
		"Salary batch is already running for this fund request",
		http.StatusConflict,
	)
)
