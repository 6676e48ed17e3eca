package salarypayment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalaryPayment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index:idx_salary_payments_org_period,priority:1;uniqueIndex:uq_salary_payment_transaction,priority:1"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_salary_payment_employee_period,priority:1"`
	FundRequestID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Month          string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_salary_payment_employee_period,priority:2;index:idx_salary_payments_org_period,priority:2"`
	Year           int       `gorm:"not null;uniqueIndex:uq_salary_payment_employee_period,priority:3;index:idx_salary_payments_org_period,priority:3"`

	BasicSalary       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	HousingAllowance  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DearnessAllowance decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OtherAllowances   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ProvidentFund     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	GrossSalary       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NetSalary         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	PaymentDate   time.Time `gorm:"type:date;not null"`
	Status        string    `gorm:"type:varchar(20);not null"`
	TransactionID string    `gorm:"type:varchar(40);not null;uniqueIndex:uq_salary_payment_transaction,priority:2"`
	SlipURL       *string   `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SalaryPayment) TableName() string {
	return "salary_payments"
}
