package vendorpaymenterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrVendorPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Vendor payment not found",
		http.StatusNotFound,
	)
	ErrVendorNotFound = apperror.New(
		apperror.CodeNotFound,
		"Vendor not found",
		http.StatusNotFound,
	)
	ErrFundRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Fund request not found",
		http.StatusNotFound,
	)
	ErrNotVendorRequest = apperror.New(
		apperror.CodeInvalidState,
		"Fund request is not a vendor payment request",
		http.StatusConflict,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid ID",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidInvoiceDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invoice date must be a past or present date in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of PENDING, PROCESSING, COMPLETED, FAILED, CANCELLED",
		http.StatusBadRequest,
	)
)
