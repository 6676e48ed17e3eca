package organization

type RegisterOrganizationRequest struct {
	Name               string `json:"name" binding:"required,max=150"`
	Email              string `json:"email" binding:"required,email"`
	Phone              string `json:"phone" binding:"omitempty,max=30"`
	Address            string `json:"address"`
	RegistrationNumber string `json:"registration_number" binding:"omitempty,max=100"`
}

type VerificationRequest struct {
	Remarks string `json:"remarks" binding:"omitempty,max=500"`
}

type OrganizationResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone,omitempty"`
	Address             string  `json:"address,omitempty"`
	RegistrationNumber  string  `json:"registration_number,omitempty"`
	Verified            bool    `json:"verified"`
	VerificationRemarks *string `json:"verification_remarks,omitempty"`
	VerifiedAt          *string `json:"verified_at,omitempty"`
	CreatedAt           string  `json:"created_at"`
}
