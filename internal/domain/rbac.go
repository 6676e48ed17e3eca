package domain

const (
	RoleOrganization = "ORGANIZATION"
	RoleBankAdmin    = "BANK_ADMIN"
	RoleEmployee     = "EMPLOYEE"
)

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
