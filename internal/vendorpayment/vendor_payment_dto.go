package vendorpayment

import "github.com/shopspring/decimal"

type CreateVendorPaymentRequest struct {
	Amount             decimal.Decimal `json:"amount"`
	InvoiceNumber      string          `json:"invoice_number" binding:"required,max=60"`
	InvoiceDate        string          `json:"invoice_date" binding:"required,datetime=2006-01-02"`
	Description        string          `json:"description"`
	InvoiceDocumentURL string          `json:"invoice_document_url" binding:"omitempty,url"`
}

type UpdateVendorPaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type VendorPaymentResponse struct {
	ID                 string          `json:"id"`
	OrganizationID     string          `json:"organization_id"`
	VendorID           string          `json:"vendor_id"`
	VendorName         string          `json:"vendor_name,omitempty"`
	FundRequestID      string          `json:"fund_request_id"`
	Amount             decimal.Decimal `json:"amount"`
	InvoiceNumber      string          `json:"invoice_number"`
	InvoiceDate        string          `json:"invoice_date"`
	InvoiceDocumentURL *string         `json:"invoice_document_url,omitempty"`
	PaymentDate        string          `json:"payment_date"`
	Status             string          `json:"status"`
	TransactionID      string          `json:"transaction_id"`
	Description        *string         `json:"description,omitempty"`
	CreatedAt          string          `json:"created_at"`
}
