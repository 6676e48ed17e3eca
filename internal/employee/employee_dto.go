package employee

type CreateEmployeeRequest struct {
	FullName          string `json:"full_name" binding:"required,max=150"`
	Email             string `json:"email" binding:"required,email"`
	EmployeeNumber    string `json:"employee_number" binding:"omitempty,max=30"`
	Phone             string `json:"phone" binding:"omitempty,max=30"`
	Designation       string `json:"designation" binding:"omitempty,max=100"`
	Department        string `json:"department" binding:"omitempty,max=100"`
	HireDate          string `json:"hire_date" binding:"required,datetime=2006-01-02"`
	BankAccountNumber string `json:"bank_account_number" binding:"omitempty,max=34"`
	BankName          string `json:"bank_name" binding:"omitempty,max=100"`
	IFSCCode          string `json:"ifsc_code" binding:"omitempty,max=20"`
}

type UpdateEmployeeRequest struct {
	FullName          string `json:"full_name" binding:"required,max=150"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone" binding:"omitempty,max=30"`
	Designation       string `json:"designation" binding:"omitempty,max=100"`
	Department        string `json:"department" binding:"omitempty,max=100"`
	BankAccountNumber string `json:"bank_account_number" binding:"omitempty,max=34"`
	BankName          string `json:"bank_name" binding:"omitempty,max=100"`
	IFSCCode          string `json:"ifsc_code" binding:"omitempty,max=20"`
}

type UpdateEmployeeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE ON_LEAVE INACTIVE TERMINATED"`
}

type EmployeeResponse struct {
	ID                string `json:"id"`
	OrganizationID    string `json:"organization_id"`
	EmployeeNumber    string `json:"employee_number"`
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	Designation       string `json:"designation,omitempty"`
	Department        string `json:"department,omitempty"`
	HireDate          string `json:"hire_date"`
	Status            string `json:"status"`
	BankAccountNumber string `json:"bank_account_number,omitempty"`
	BankName          string `json:"bank_name,omitempty"`
	IFSCCode          string `json:"ifsc_code,omitempty"`
}

type EmployeeOptionResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Status         string `json:"status"`
}
