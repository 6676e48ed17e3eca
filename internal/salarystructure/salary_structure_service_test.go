package salarystructure_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-payroll/internal/employee"
	employeeMock "go-payroll/internal/employee/mock"
	"go-payroll/internal/salarystructure"
	salarystructureerrors "go-payroll/internal/salarystructure/errors"
	salarystructureMock "go-payroll/internal/salarystructure/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   salarystructure.Service
	repo      *salarystructureMock.MockRepository
	employees *employeeMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := salarystructureMock.NewMockRepository(ctrl)
	employees := employeeMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   salarystructure.NewService(db, repo, employees, zap.NewNop()),
		repo:      repo,
		employees: employees,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func amount(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func components(basic, housing, dearness, pf string) salarystructure.SalaryComponents {
	return salarystructure.SalaryComponents{
		BasicSalary:       amount(basic),
		HousingAllowance:  amount(housing),
		DearnessAllowance: amount(dearness),
		ProvidentFund:     amount(pf),
	}
}

func TestSalaryStructureService_SetActive(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()
	emplID := uuid.New()

	t.Run("replaces previous active structure", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := salarystructure.SetSalaryStructureRequest{
			SalaryComponents: components("50000", "10000", "5000", "6000"),
			EffectiveFrom:    "2025-04-01",
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			LockEmployee(ctx, orgID, emplID.String()).
			Return(&employee.Employee{ID: emplID}, nil)
		deps.repo.EXPECT().DeactivateAllByEmployee(ctx, emplID.String()).Return(int64(1), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *salarystructure.SalaryStructure) error {
				assert.True(t, s.IsActive)
				assert.Equal(t, emplID, s.EmployeeID)
				assert.True(t, s.OtherAllowances.IsZero())
				assert.True(t, s.GrossSalary.Equal(decimal.RequireFromString("65000")))
				assert.True(t, s.NetSalary.Equal(decimal.RequireFromString("59000")))
				return nil
			})

		resp, err := deps.service.SetActive(ctx, orgID, emplID.String(), req)
		assert.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.Equal(t, "2025-04-01", resp.EffectiveFrom)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			LockEmployee(ctx, orgID, emplID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.SetActive(ctx, orgID, emplID.String(), salarystructure.SetSalaryStructureRequest{
			SalaryComponents: components("1", "0", "0", "0"),
			EffectiveFrom:    "2025-04-01",
		})
		assert.ErrorIs(t, err, salarystructureerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative component rejected", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.SetActive(ctx, orgID, emplID.String(), salarystructure.SetSalaryStructureRequest{
			SalaryComponents: components("-1", "0", "0", "0"),
			EffectiveFrom:    "2025-04-01",
		})
		assert.ErrorIs(t, err, salarystructureerrors.ErrNegativeComponent)
	})

	t.Run("missing components rejected", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.SetActive(ctx, orgID, emplID.String(), salarystructure.SetSalaryStructureRequest{
			EffectiveFrom: "2025-04-01",
		})
		assert.ErrorIs(t, err, salarystructureerrors.ErrMissingComponent)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("zero basic salary rejected", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.SetActive(ctx, orgID, emplID.String(), salarystructure.SetSalaryStructureRequest{
			SalaryComponents: components("0", "100", "0", "0"),
			EffectiveFrom:    "2025-04-01",
		})
		assert.ErrorIs(t, err, salarystructureerrors.ErrBasicSalaryNotPositive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid effective date", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.SetActive(ctx, orgID, emplID.String(), salarystructure.SetSalaryStructureRequest{
			SalaryComponents: components("1", "0", "0", "0"),
			EffectiveFrom:    "01/04/2025",
		})
		assert.ErrorIs(t, err, salarystructureerrors.ErrInvalidEffectiveDate)
	})

	t.Run("concurrent activation", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockEmployee(ctx, orgID, emplID.String()).Return(&employee.Employee{ID: emplID}, nil)
		deps.repo.EXPECT().DeactivateAllByEmployee(ctx, emplID.String()).Return(int64(0), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_salary_structure_active"})

		_, err := deps.service.SetActive(ctx, orgID, emplID.String(), salarystructure.SetSalaryStructureRequest{
			SalaryComponents: components("1", "0", "0", "0"),
			EffectiveFrom:    "2025-04-01",
		})
		assert.ErrorIs(t, err, salarystructureerrors.ErrConcurrentActivation)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestSalaryStructureService_GetActive(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()
	emplID := uuid.New().String()

	t.Run("newest active wins", func(t *testing.T) {
		deps := setupServiceTest(t)
		older := salarystructure.SalaryStructure{ID: uuid.New(), IsActive: true, EffectiveFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
		newer := salarystructure.SalaryStructure{ID: uuid.New(), IsActive: true, EffectiveFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}

		deps.employees.EXPECT().FindByIDAndOrganization(ctx, orgID, emplID).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().
			FindActiveByEmployee(ctx, emplID).
			Return([]salarystructure.SalaryStructure{older, newer}, nil)

		resp, err := deps.service.GetActive(ctx, orgID, emplID)
		assert.NoError(t, err)
		assert.Equal(t, newer.ID.String(), resp.ID)
	})

	t.Run("no active structure", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().FindByIDAndOrganization(ctx, orgID, emplID).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().FindActiveByEmployee(ctx, emplID).Return(nil, nil)

		_, err := deps.service.GetActive(ctx, orgID, emplID)
		assert.ErrorIs(t, err, salarystructureerrors.ErrActiveStructureNotFound)
	})

	t.Run("employee in another organization", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().
			FindByIDAndOrganization(ctx, orgID, emplID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetActive(ctx, orgID, emplID)
		assert.ErrorIs(t, err, salarystructureerrors.ErrEmployeeNotFound)
	})
}

func TestSalaryStructureService_Update(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()
	id := uuid.New()

	t.Run("recomputes derived fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := salarystructure.UpdateSalaryStructureRequest{SalaryComponents: components("1000", "200", "100", "150")}
		req.OtherAllowances = amount("500")

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDForUpdate(ctx, orgID, id.String()).
			Return(&salarystructure.SalaryStructure{ID: id, IsActive: true}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *salarystructure.SalaryStructure) error {
				assert.True(t, s.GrossSalary.Equal(decimal.RequireFromString("1800")))
				assert.True(t, s.NetSalary.Equal(decimal.RequireFromString("1650")))
				return nil
			})

		resp, err := deps.service.Update(ctx, orgID, id.String(), req)
		assert.NoError(t, err)
		assert.True(t, resp.NetSalary.Equal(decimal.RequireFromString("1650")))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("empty body rejected before touching storage", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, orgID, id.String(), salarystructure.UpdateSalaryStructureRequest{})
		assert.ErrorIs(t, err, salarystructureerrors.ErrMissingComponent)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("inactive structure", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDForUpdate(ctx, orgID, id.String()).
			Return(&salarystructure.SalaryStructure{ID: id, IsActive: false}, nil)

		_, err := deps.service.Update(ctx, orgID, id.String(), salarystructure.UpdateSalaryStructureRequest{
			SalaryComponents: components("1000", "0", "0", "0"),
		})
		assert.ErrorIs(t, err, salarystructureerrors.ErrStructureInactive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("deactivated before the write", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDForUpdate(ctx, orgID, id.String()).
			Return(&salarystructure.SalaryStructure{ID: id, IsActive: true}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, orgID, id.String(), salarystructure.UpdateSalaryStructureRequest{
			SalaryComponents: components("1000", "0", "0", "0"),
		})
		assert.ErrorIs(t, err, salarystructureerrors.ErrStructureInactive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, orgID, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, orgID, id.String(), salarystructure.UpdateSalaryStructureRequest{
			SalaryComponents: components("1000", "0", "0", "0"),
		})
		assert.ErrorIs(t, err, salarystructureerrors.ErrSalaryStructureNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, orgID, "nope", salarystructure.UpdateSalaryStructureRequest{})
		assert.ErrorIs(t, err, salarystructureerrors.ErrInvalidID)
	})
}

func TestSalaryStructureService_Deactivate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, "", id.String()).Return(&salarystructure.SalaryStructure{ID: id, IsActive: true}, nil)
		deps.repo.EXPECT().Deactivate(ctx, id.String()).Return(nil)

		assert.NoError(t, deps.service.Deactivate(ctx, "", id.String()))
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, "", id.String()).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Deactivate(ctx, "", id.String())
		assert.ErrorIs(t, err, salarystructureerrors.ErrSalaryStructureNotFound)
	})
}
