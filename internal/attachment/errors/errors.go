package attachmenterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"File is required",
		http.StatusBadRequest,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"File must not exceed 10 MB",
		http.StatusBadRequest,
	)
	ErrInvalidOwner = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attachment owner",
		http.StatusBadRequest,
	)
	ErrStorageUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"File storage is not available",
		http.StatusServiceUnavailable,
	)
	ErrUploadFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Failed to upload file",
		http.StatusBadGateway,
	)
)
