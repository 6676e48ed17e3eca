package salarystructureerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrSalaryStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary structure not found",
		http.StatusNotFound,
	)
	ErrActiveStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"No active salary structure for employee",
		http.StatusNotFound,
	)
	ErrStructureInactive = apperror.New(
		apperror.CodeInvalidState,
		"Inactive salary structures cannot be modified",
		http.StatusConflict,
	)
	ErrNegativeComponent = apperror.New(
		apperror.CodeInvalidInput,
		"Salary components must not be negative",
		http.StatusBadRequest,
	)
	ErrMissingComponent = apperror.New(
		apperror.CodeInvalidInput,
		"basic_salary, housing_allowance, dearness_allowance and provident_fund are required",
		http.StatusBadRequest,
	)
	ErrBasicSalaryNotPositive = apperror.New(
		apperror.CodeInvalidInput,
		"basic_salary must be greater than 0",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid effective_from format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid ID",
		http.StatusBadRequest,
	)
	ErrConcurrentActivation = apperror.New(
		apperror.CodeConflict,
		"Another salary structure was activated concurrently, retry the request",
		http.StatusConflict,
	)
)
