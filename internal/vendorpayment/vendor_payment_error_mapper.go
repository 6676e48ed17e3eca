package vendorpayment

import (
	"errors"

	vendorpaymenterrors "go-payroll/internal/vendorpayment/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return vendorpaymenterrors.ErrVendorPaymentNotFound
	}
	return err
}
