package apperror_test

import (
	"encoding/json"
	"errors"
	"testing"

	"go-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Month         string `json:"month" binding:"required"`
	RequestType   string `json:"request_type" binding:"omitempty,oneof=SALARY_DISBURSEMENT VENDOR_PAYMENT"`
	InvoiceNumber string `json:"invoice_number" binding:"omitempty,max=5"`
	EffectiveFrom string `json:"effective_from" binding:"omitempty,datetime=2006-01-02"`
	Email         string `json:"email" binding:"omitempty,email"`
}

func validate(t *testing.T, p payload) error {
	t.Helper()
	apperror.Init()
	err := binding.Validator.ValidateStruct(p)
	require.Error(t, err)
	return apperror.MapValidationError(err)
}

func TestMapValidationError(t *testing.T) {
	tests := []struct {
		name string
		in   payload
		want string
	}{
		{"required", payload{}, "Month is required"},
		{"oneof", payload{Month: "May", RequestType: "BONUS"}, "Request Type must be one of: SALARY_DISBURSEMENT, VENDOR_PAYMENT"},
		{"max", payload{Month: "May", InvoiceNumber: "INV-000001"}, "Invoice Number must be at most 5 characters"},
		{"datetime", payload{Month: "May", EffectiveFrom: "01/05/2024"}, "Effective From must be a date in YYYY-MM-DD format"},
		{"other tag", payload{Month: "May", Email: "nope"}, "Email is invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(t, tt.in)

			httpErr := apperror.ToHTTP(err)
			assert.Equal(t, 400, httpErr.Status)
			assert.Equal(t, apperror.CodeInvalidInput, httpErr.Code)
			assert.Equal(t, tt.want, httpErr.Message)
		})
	}
}

func TestMapValidationError_NonValidator(t *testing.T) {
	t.Run("json type mismatch", func(t *testing.T) {
		var p struct {
			Year int `json:"year"`
		}
		err := json.Unmarshal([]byte(`{"year":"2024"}`), &p)

		assert.Equal(t, "Year is invalid", apperror.ToHTTP(apperror.MapValidationError(err)).Message)
	})

	t.Run("anything else", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(errors.New("EOF")))

		assert.Equal(t, "Invalid input", httpErr.Message)
	})
}

func TestToHTTP_HidesUnknownErrors(t *testing.T) {
	httpErr := apperror.ToHTTP(errors.New("pq: connection reset"))

	assert.Equal(t, 500, httpErr.Status)
	assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
	assert.NotContains(t, httpErr.Message, "pq")
}

func TestAppError_IsMatchesWrappedSentinel(t *testing.T) {
	wrapped := apperror.ErrInternal.WithCause(errors.New("disk full"))

	assert.ErrorIs(t, wrapped, apperror.ErrInternal)
	assert.Contains(t, wrapped.Error(), "disk full")
}
