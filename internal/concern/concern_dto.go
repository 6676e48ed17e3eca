package concern

type RaiseConcernRequest struct {
	Subject     string `json:"subject" binding:"required,min=5,max=255"`
	Description string `json:"description" binding:"required,min=10,max=2000"`
	Priority    string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

type RespondRequest struct {
	Response string `json:"response" binding:"required,min=10,max=2000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
}

type ConcernResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Subject       string  `json:"subject"`
	Description   string  `json:"description"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
	Response      *string `json:"response,omitempty"`
	RespondedAt   *string `json:"responded_at,omitempty"`
	RaisedAt      string  `json:"raised_at"`
	UpdatedAt     string  `json:"updated_at"`
}
