package apperror

import "net/http"

var (
	ErrForbidden = New(CodeForbidden, "You do not have permission to access this resource", http.StatusForbidden)
	ErrInternal  = New(CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
)

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
}

func fieldTooLong(field, limit string) *AppError {
	return New(CodeInvalidInput, field+" must be at most "+limit+" characters", http.StatusBadRequest)
}

func fieldNotOneOf(field, options string) *AppError {
	return New(CodeInvalidInput, field+" must be one of: "+options, http.StatusBadRequest)
}

func fieldBadDate(field string) *AppError {
	return New(CodeInvalidInput, field+" must be a date in YYYY-MM-DD format", http.StatusBadRequest)
}
