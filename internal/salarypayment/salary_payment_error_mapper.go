package salarypayment

import (
	"errors"

	salarypaymenterrors "go-payroll/internal/salarypayment/errors"
	"go-payroll/internal/shared/pgerr"

	"gorm.io/gorm"
)

const employeePeriodIndex = "uq_salary_payment_employee_period"

func isDuplicatePayment(err error) bool {
	return pgerr.UniqueViolation(err, employeePeriodIndex)
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarypaymenterrors.ErrSalaryPaymentNotFound
	}
	return err
}
