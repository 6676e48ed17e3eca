package concern

import (
	"errors"

	concernerrors "go-payroll/internal/concern/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return concernerrors.ErrConcernNotFound
	}
	return err
}
