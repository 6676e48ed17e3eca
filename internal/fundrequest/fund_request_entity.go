package fundrequest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TypeSalaryDisbursement = "SALARY_DISBURSEMENT"
	TypeVendorPayment      = "VENDOR_PAYMENT"
)

type FundRequest struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;not null;index:idx_fund_requests_org_period,priority:1"`
	RequestType    string          `gorm:"type:varchar(30);not null"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	EmployeeCount  *int
	Month          string `gorm:"type:varchar(20);not null;index:idx_fund_requests_org_period,priority:2"`
	Year           int    `gorm:"not null;index:idx_fund_requests_org_period,priority:3"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_fund_requests_status"`
	Remarks         *string    `gorm:"type:text"`
	RejectionReason *string    `gorm:"type:text"`
	CreatedBy       *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time

	ProcessingSummary datatypes.JSON `gorm:"type:jsonb"`
	ProcessedAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (FundRequest) TableName() string {
	return "fund_requests"
}

func IsValidType(t string) bool {
	return t == TypeSalaryDisbursement || t == TypeVendorPayment
}
