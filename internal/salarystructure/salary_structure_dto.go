package salarystructure

import "github.com/shopspring/decimal"

// SalaryComponents carries caller-supplied figures. Gross and net are always derived.
// Every figure except OtherAllowances is mandatory, on create and on update.
type SalaryComponents struct {
	BasicSalary       *decimal.Decimal `json:"basic_salary" binding:"required"`
	HousingAllowance  *decimal.Decimal `json:"housing_allowance" binding:"required"`
	DearnessAllowance *decimal.Decimal `json:"dearness_allowance" binding:"required"`
	OtherAllowances   *decimal.Decimal `json:"other_allowances,omitempty"`
	ProvidentFund     *decimal.Decimal `json:"provident_fund" binding:"required"`
}

type SetSalaryStructureRequest struct {
	SalaryComponents
	EffectiveFrom string `json:"effective_from" binding:"required,datetime=2006-01-02"`
}

type UpdateSalaryStructureRequest struct {
	SalaryComponents
	EffectiveFrom string `json:"effective_from" binding:"omitempty,datetime=2006-01-02"`
}

type SalaryStructureResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	BasicSalary       decimal.Decimal `json:"basic_salary"`
	HousingAllowance  decimal.Decimal `json:"housing_allowance"`
	DearnessAllowance decimal.Decimal `json:"dearness_allowance"`
	OtherAllowances   decimal.Decimal `json:"other_allowances"`
	ProvidentFund     decimal.Decimal `json:"provident_fund"`
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	NetSalary         decimal.Decimal `json:"net_salary"`
	EffectiveFrom     string          `json:"effective_from"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         string          `json:"created_at"`
}
