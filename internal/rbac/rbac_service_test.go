package rbac_test

import (
	"context"
	"errors"
	"testing"

	"go-payroll/internal/domain"
	"go-payroll/internal/rbac"
	"go-payroll/internal/rbac/infra"
	rbacMock "go-payroll/internal/rbac/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newService(t *testing.T, repo rbac.Repository) rbac.Service {
	t.Helper()
	enforcer, err := infra.NewDefaultEnforcer()
	require.NoError(t, err)
	return rbac.NewService(repo, enforcer, zap.NewNop())
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newService(t, nil)

	tests := []struct {
		role, resource, action string
		want                   bool
	}{
		{domain.RoleOrganization, "fund_request", "create", true},
		{domain.RoleOrganization, "fund_request", "approve", false},
		{domain.RoleBankAdmin, "fund_request", "approve", true},
		{domain.RoleBankAdmin, "salary_batch", "process", true},
		{domain.RoleBankAdmin, "fund_request", "create", false},
		{domain.RoleBankAdmin, "vendor_payment", "update_status", true},
		{domain.RoleOrganization, "vendor_payment", "update_status", false},
		{domain.RoleEmployee, "salary_payment", "read_own", true},
		{domain.RoleEmployee, "salary_payment", "read", false},
		{domain.RoleEmployee, "concern", "respond", false},
		{domain.RoleOrganization, "concern", "respond", true},
		{domain.RoleOrganization, "document", "review", false},
		{domain.RoleBankAdmin, "document", "review", true},
		{"UNKNOWN", "fund_request", "read", false},
	}
	for _, tt := range tests {
		t.Run(tt.role+" "+tt.resource+":"+tt.action, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})

			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestRBACService_Reload(t *testing.T) {
	ctx := context.Background()

	t.Run("adds database grants", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := rbacMock.NewMockRepository(ctrl)
		repo.EXPECT().ListGrants(ctx).Return([]rbac.Grant{
			{Role: domain.RoleEmployee, Resource: "salary_structure", Action: "read"},
		}, nil)
		svc := newService(t, repo)

		require.NoError(t, svc.Reload(ctx))

		allowed, err := svc.Enforce(domain.EnforceRequest{Role: domain.RoleEmployee, Resource: "salary_structure", Action: "read"})
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := rbacMock.NewMockRepository(ctrl)
		repo.EXPECT().ListGrants(ctx).Return(nil, errors.New("db down"))
		svc := newService(t, repo)

		assert.EqualError(t, svc.Reload(ctx), "db down")
	})
}

func TestRBACService_Permissions(t *testing.T) {
	svc := newService(t, nil)

	perms, err := svc.Permissions(domain.RoleEmployee)

	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.PermissionResponse{
		{Resource: "employee", Action: "read_own"},
		{Resource: "salary_payment", Action: "read_own"},
		{Resource: "concern", Action: "create"},
		{Resource: "concern", Action: "read_own"},
		{Resource: "concern", Action: "update_own"},
		{Resource: "concern", Action: "delete_own"},
		{Resource: "document", Action: "create_own"},
	}, perms)
}
