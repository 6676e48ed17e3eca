package organization

import (
	"errors"

	organizationerrors "go-payroll/internal/organization/errors"
	"go-payroll/internal/shared/pgerr"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return organizationerrors.ErrOrganizationNotFound
	}

	if pgerr.UniqueViolation(err, "uq_organization_email") {
		return organizationerrors.ErrOrganizationAlreadyExists
	}

	return err
}
