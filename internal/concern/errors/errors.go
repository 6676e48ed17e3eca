package concernerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrConcernNotFound = apperror.New(
		apperror.CodeNotFound,
		"Concern not found",
		http.StatusNotFound,
	)
	ErrInvalidConcernID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid concern ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid concern status",
		http.StatusBadRequest,
	)
	ErrConcernClosed = apperror.New(
		apperror.CodeInvalidState,
		"Cannot respond to a closed concern",
		http.StatusBadRequest,
	)
	ErrCannotReopen = apperror.New(
		apperror.CodeInvalidState,
		"Cannot reopen a closed concern",
		http.StatusBadRequest,
	)
	ErrCloseWithoutResponse = apperror.New(
		apperror.CodeInvalidState,
		"Cannot close concern without a response",
		http.StatusBadRequest,
	)
	ErrAttachToClosed = apperror.New(
		apperror.CodeInvalidState,
		"Cannot attach files to a closed concern",
		http.StatusBadRequest,
	)
)
