package fundrequest

import (
	"errors"

	fundrequesterrors "go-payroll/internal/fundrequest/errors"
	"go-payroll/internal/shared/pgerr"

	"gorm.io/gorm"
)

const salaryPeriodIndex = "uq_fund_request_salary_period"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fundrequesterrors.ErrFundRequestNotFound
	}

	if pgerr.UniqueViolation(err, salaryPeriodIndex) {
		return fundrequesterrors.ErrDuplicateRequest
	}

	return err
}
