package fundrequest

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type CreateFundRequestRequest struct {
	RequestType   string          `json:"request_type" binding:"required,oneof=SALARY_DISBURSEMENT VENDOR_PAYMENT"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	EmployeeCount *int            `json:"employee_count,omitempty" binding:"omitempty,min=0"`
	Month         string          `json:"month" binding:"required"`
	Year          int             `json:"year" binding:"required"`
	Remarks       string          `json:"remarks"`
}

type RejectFundRequestRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type FundRequestResponse struct {
	ID                string          `json:"id"`
	OrganizationID    string          `json:"organization_id"`
	RequestType       string          `json:"request_type"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	EmployeeCount     *int            `json:"employee_count,omitempty"`
	Month             string          `json:"month"`
	Year              int             `json:"year"`
	Status            string          `json:"status"`
	Remarks           *string         `json:"remarks,omitempty"`
	RejectionReason   *string         `json:"rejection_reason,omitempty"`
	ApprovedBy        *string         `json:"approved_by,omitempty"`
	ApprovedAt        *string         `json:"approved_at,omitempty"`
	ProcessingSummary json.RawMessage `json:"processing_summary,omitempty"`
	ProcessedAt       *string         `json:"processed_at,omitempty"`
	CreatedAt         string          `json:"created_at"`
}
