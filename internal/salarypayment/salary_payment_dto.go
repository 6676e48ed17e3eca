package salarypayment

import "github.com/shopspring/decimal"

const (
	OutcomeCreated = "CREATED"
	OutcomeSkipped = "SKIPPED"
	OutcomeWarning = "WARNING"
)

const (
	ReasonAlreadyPaid        = "already_paid"
	ReasonNoActiveStructure  = "no_active_structure"
	ReasonDuplicateOnInsert  = "duplicate_on_insert"
	ReasonSlipRenderFailed   = "slip_render_failed"
	ReasonSlipStoreFailed    = "slip_store_failed"
	ReasonSlipPersistFailed  = "slip_persist_failed"
	ReasonNotificationFailed = "notification_failed"
)

// A warning outcome may carry several reasons, joined by reasonSeparator.
const reasonSeparator = ","

type SalaryPaymentResponse struct {
	ID                string          `json:"id"`
	OrganizationID    string          `json:"organization_id"`
	EmployeeID        string          `json:"employee_id"`
	FundRequestID     string          `json:"fund_request_id"`
	Month             string          `json:"month"`
	Year              int             `json:"year"`
	BasicSalary       decimal.Decimal `json:"basic_salary"`
	HousingAllowance  decimal.Decimal `json:"housing_allowance"`
	DearnessAllowance decimal.Decimal `json:"dearness_allowance"`
	OtherAllowances   decimal.Decimal `json:"other_allowances"`
	ProvidentFund     decimal.Decimal `json:"provident_fund"`
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	NetSalary         decimal.Decimal `json:"net_salary"`
	Amount            decimal.Decimal `json:"amount"`
	PaymentDate       string          `json:"payment_date"`
	Status            string          `json:"status"`
	TransactionID     string          `json:"transaction_id"`
	SlipURL           *string         `json:"slip_url,omitempty"`
	CreatedAt         string          `json:"created_at"`
}

// Outcome is the per-employee result of a batch run.
type Outcome struct {
	EmployeeID      string `json:"employee_id"`
	EmployeeNumber  string `json:"employee_number"`
	Result          string `json:"result"`
	Reason          string `json:"reason,omitempty"`
	SalaryPaymentID string `json:"salary_payment_id,omitempty"`
}

type Summary struct {
	Eligible int             `json:"eligible"`
	Created  int             `json:"created"`
	Skipped  int             `json:"skipped"`
	Warnings int             `json:"warnings"`
	TotalNet decimal.Decimal `json:"total_net"`
}

type BatchResult struct {
	FundRequestID string                  `json:"fund_request_id"`
	Status        string                  `json:"status"`
	Records       []SalaryPaymentResponse `json:"records"`
	Outcomes      []Outcome               `json:"outcomes"`
	Summary       Summary                 `json:"summary"`
}

func (s *Summary) add(o Outcome) {
	switch o.Result {
	case OutcomeCreated:
		s.Created++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeWarning:
		s.Created++
		s.Warnings++
	}
}
