package employee

import (
	"errors"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/pgerr"

	"gorm.io/gorm"
)

var uniqueConstraintErrors = map[string]error{
	"uq_employee_number": employeeerrors.ErrEmployeeNumberAlreadyExists,
	"uq_employee_email":  employeeerrors.ErrEmployeeAlreadyExists,
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	for constraint, mapped := range uniqueConstraintErrors {
		if pgerr.UniqueViolation(err, constraint) {
			return mapped
		}
	}
	return err
}
