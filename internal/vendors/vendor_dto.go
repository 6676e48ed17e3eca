package vendors

type CreateVendorRequest struct {
	Name              string `json:"name" binding:"required,max=150"`
	Email             string `json:"email" binding:"omitempty,email"`
	Phone             string `json:"phone" binding:"omitempty,max=30"`
	Address           string `json:"address"`
	ServiceType       string `json:"service_type" binding:"omitempty,max=100"`
	BankAccountNumber string `json:"bank_account_number" binding:"omitempty,max=34"`
	BankName          string `json:"bank_name" binding:"omitempty,max=100"`
	IFSCCode          string `json:"ifsc_code" binding:"omitempty,max=20"`
	TaxID             string `json:"tax_id" binding:"omitempty,max=30"`
}

type VendorResponse struct {
	ID                string `json:"id"`
	OrganizationID    string `json:"organization_id"`
	Name              string `json:"name"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	ServiceType       string `json:"service_type,omitempty"`
	BankAccountNumber string `json:"bank_account_number,omitempty"`
	BankName          string `json:"bank_name,omitempty"`
	IFSCCode          string `json:"ifsc_code,omitempty"`
	TaxID             string `json:"tax_id,omitempty"`
	Status            string `json:"status"`
}
