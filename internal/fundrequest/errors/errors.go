package fundrequesterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrFundRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Fund request not found",
		http.StatusNotFound,
	)
	ErrInvalidFundRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid fund request ID",
		http.StatusBadRequest,
	)
	ErrInvalidApproverID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid approver ID",
		http.StatusBadRequest,
	)
	ErrInvalidRequestType = apperror.New(
		apperror.CodeInvalidInput,
		"Request type must be SALARY_DISBURSEMENT or VENDOR_PAYMENT",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Total amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Year must be between 2000 and 2100",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid fund request status",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Rejection reason is required",
		http.StatusBadRequest,
	)
	ErrDuplicateRequest = apperror.New(
		apperror.CodeConflict,
		"A salary disbursement request already exists for this period",
		http.StatusConflict,
	)
	ErrAlreadyProcessed = apperror.New(
		apperror.CodeInvalidState,
		"Fund request has already been processed",
		http.StatusConflict,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Invalid fund request status transition",
		http.StatusConflict,
	)
	ErrCannotDelete = apperror.New(
		apperror.CodeInvalidState,
		"Approved fund requests cannot be deleted",
		http.StatusConflict,
	)
)
