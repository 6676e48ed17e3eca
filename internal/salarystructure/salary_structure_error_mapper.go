package salarystructure

import (
	"errors"

	salarystructureerrors "go-payroll/internal/salarystructure/errors"
	"go-payroll/internal/shared/pgerr"

	"gorm.io/gorm"
)

const activeStructureIndex = "uq_salary_structure_active"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarystructureerrors.ErrSalaryStructureNotFound
	}

	if pgerr.UniqueViolation(err, activeStructureIndex) {
		return salarystructureerrors.ErrConcurrentActivation
	}

	return err
}
