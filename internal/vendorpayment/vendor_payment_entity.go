package vendorpayment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VendorPayment struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrganizationID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:uq_vendor_payment_transaction,priority:1"`
	VendorID           uuid.UUID       `gorm:"type:uuid;not null;index:idx_vendor_payments_vendor_date,priority:1"`
	FundRequestID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	InvoiceNumber      string          `gorm:"type:varchar(60);not null"`
	InvoiceDate        time.Time       `gorm:"type:date;not null"`
	InvoiceDocumentURL *string         `gorm:"type:text"`
	PaymentDate        time.Time       `gorm:"type:date;not null;index:idx_vendor_payments_vendor_date,priority:2,sort:desc"`
	Status             string          `gorm:"type:varchar(20);not null"`
	TransactionID      string          `gorm:"type:varchar(40);not null;uniqueIndex:uq_vendor_payment_transaction,priority:2"`
	Description        *string         `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (VendorPayment) TableName() string {
	return "vendor_payments"
}
