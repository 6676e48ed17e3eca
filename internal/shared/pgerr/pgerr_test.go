package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"go-payroll/internal/shared/pgerr"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"matching constraint", &pgconn.PgError{Code: "23505", ConstraintName: "uq_vendor_name"}, true},
		{"wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_vendor_name"}), true},
		{"other constraint", &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"}, false},
		{"other code", &pgconn.PgError{Code: "23503", ConstraintName: "uq_vendor_name"}, false},
		{"message fallback", errors.New(`ERROR: duplicate key value violates unique constraint "uq_vendor_name"`), true},
		{"unrelated", errors.New("connection reset by peer"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgerr.UniqueViolation(tt.err, "uq_vendor_name"))
		})
	}
}
