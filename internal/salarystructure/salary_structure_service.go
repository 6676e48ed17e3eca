package salarystructure

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-payroll/internal/employee"
	salarystructureerrors "go-payroll/internal/salarystructure/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_structure_service.go -destination=mock/salary_structure_service_mock.go -package=mock
type Service interface {
	Resolver
	SetActive(ctx context.Context, organizationID, employeeID string, req SetSalaryStructureRequest) (SalaryStructureResponse, error)
	GetActive(ctx context.Context, organizationID, employeeID string) (SalaryStructureResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (SalaryStructureResponse, error)
	GetHistory(ctx context.Context, organizationID, employeeID string) ([]SalaryStructureResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateSalaryStructureRequest) (SalaryStructureResponse, error)
	Deactivate(ctx context.Context, organizationID, id string) error
}

// Resolver is the read side used by the disbursement batch.
type Resolver interface {
	ResolveActive(ctx context.Context, employeeID string) (*SalaryStructure, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salarystructure.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarystructure.service")
	}
	return &service{db: db, repo: repo, employees: employees, logger: l}
}

func (s *service) SetActive(
	ctx context.Context,
	organizationID, employeeID string,
	req SetSalaryStructureRequest,
) (SalaryStructureResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(employeeID); err != nil {
		return SalaryStructureResponse{}, salarystructureerrors.ErrEmployeeNotFound
	}
	effectiveFrom, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		return SalaryStructureResponse{}, salarystructureerrors.ErrInvalidEffectiveDate
	}
	if err := validateComponents(req.SalaryComponents); err != nil {
		return SalaryStructureResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("set salary structure begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryStructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.LockEmployee(ctx, organizationID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryStructureResponse{}, salarystructureerrors.ErrEmployeeNotFound
		}
		s.logger.Error("set salary structure lock employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SalaryStructureResponse{}, err
	}

	replaced, err := qtx.DeactivateAllByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("set salary structure deactivate previous failed", zap.Error(err))
		return SalaryStructureResponse{}, err
	}

	structure := &SalaryStructure{
		ID:            uuid.New(),
		EmployeeID:    empl.ID,
		EffectiveFrom: effectiveFrom,
		IsActive:      true,
	}
	applyComponents(structure, req.SalaryComponents)

	if err := qtx.Create(ctx, structure); err != nil {
		s.logger.Warn("set salary structure insert failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("set salary structure commit failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("salary structure activated",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("salary_structure_id", structure.ID.String()),
		zap.Int64("replaced", replaced),
	)
	return mapToResponse(*structure), nil
}

func (s *service) GetActive(ctx context.Context, organizationID, employeeID string) (SalaryStructureResponse, error) {
	if err := s.ensureEmployee(ctx, organizationID, employeeID); err != nil {
		return SalaryStructureResponse{}, err
	}
	structure, err := s.ResolveActive(ctx, employeeID)
	if err != nil {
		return SalaryStructureResponse{}, err
	}
	return mapToResponse(*structure), nil
}

// ResolveActive returns the newest active structure, or ErrActiveStructureNotFound.
func (s *service) ResolveActive(ctx context.Context, employeeID string) (*SalaryStructure, error) {
	structures, err := s.repo.FindActiveByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("resolve active salary structure failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	if len(structures) > 1 {
		s.logger.Warn("multiple active salary structures", zap.String("employee_id", employeeID), zap.Int("count", len(structures)))
	}
	active := MostRecent(structures)
	if active == nil {
		return nil, salarystructureerrors.ErrActiveStructureNotFound
	}
	return active, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (SalaryStructureResponse, error) {
	structure, err := s.find(ctx, organizationID, id)
	if err != nil {
		return SalaryStructureResponse{}, err
	}
	return mapToResponse(*structure), nil
}

func (s *service) GetHistory(ctx context.Context, organizationID, employeeID string) ([]SalaryStructureResponse, error) {
	if err := s.ensureEmployee(ctx, organizationID, employeeID); err != nil {
		return nil, err
	}
	structures, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list salary structures failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	resp := make([]SalaryStructureResponse, len(structures))
	for i, st := range structures {
		resp[i] = mapToResponse(st)
	}
	return resp, nil
}

func (s *service) Update(
	ctx context.Context,
	organizationID, id string,
	req UpdateSalaryStructureRequest,
) (SalaryStructureResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SalaryStructureResponse{}, salarystructureerrors.ErrInvalidID
	}
	if err := validateComponents(req.SalaryComponents); err != nil {
		return SalaryStructureResponse{}, err
	}
	var effectiveFrom time.Time
	if req.EffectiveFrom != "" {
		parsed, err := time.Parse("2006-01-02", req.EffectiveFrom)
		if err != nil {
			return SalaryStructureResponse{}, salarystructureerrors.ErrInvalidEffectiveDate
		}
		effectiveFrom = parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update salary structure begin tx failed", zap.String("salary_structure_id", id), zap.Error(err))
		return SalaryStructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	structure, err := qtx.FindByIDForUpdate(ctx, organizationID, id)
	if err != nil {
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}
	if !structure.IsActive {
		return SalaryStructureResponse{}, salarystructureerrors.ErrStructureInactive
	}
	if !effectiveFrom.IsZero() {
		structure.EffectiveFrom = effectiveFrom
	}

	applyComponents(structure, req.SalaryComponents)
	if err := qtx.Update(ctx, structure); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("update salary structure lost to deactivation", zap.String("salary_structure_id", id))
			return SalaryStructureResponse{}, salarystructureerrors.ErrStructureInactive
		}
		s.logger.Error("update salary structure failed", zap.String("salary_structure_id", id), zap.Error(err))
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update salary structure commit failed", zap.String("salary_structure_id", id), zap.Error(err))
		return SalaryStructureResponse{}, err
	}

	s.logger.Info("salary structure updated", zap.String("salary_structure_id", id))
	return mapToResponse(*structure), nil
}

func (s *service) Deactivate(ctx context.Context, organizationID, id string) error {
	if _, err := s.find(ctx, organizationID, id); err != nil {
		return err
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		s.logger.Error("deactivate salary structure failed", zap.String("salary_structure_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	s.logger.Info("salary structure deactivated", zap.String("salary_structure_id", id))
	return nil
}

func (s *service) find(ctx context.Context, organizationID, id string) (*SalaryStructure, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, salarystructureerrors.ErrInvalidID
	}
	structure, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return structure, nil
}

func (s *service) ensureEmployee(ctx context.Context, organizationID, employeeID string) error {
	if _, err := uuid.Parse(employeeID); err != nil {
		return salarystructureerrors.ErrEmployeeNotFound
	}
	var err error
	if organizationID == "" {
		_, err = s.employees.FindByID(ctx, employeeID)
	} else {
		_, err = s.employees.FindByIDAndOrganization(ctx, organizationID, employeeID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return salarystructureerrors.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

func validateComponents(c SalaryComponents) error {
	for _, v := range []*decimal.Decimal{c.BasicSalary, c.HousingAllowance, c.DearnessAllowance, c.ProvidentFund} {
		if v == nil {
			return salarystructureerrors.ErrMissingComponent
		}
		if v.IsNegative() {
			return salarystructureerrors.ErrNegativeComponent
		}
	}
	if c.OtherAllowances != nil && c.OtherAllowances.IsNegative() {
		return salarystructureerrors.ErrNegativeComponent
	}
	if !c.BasicSalary.IsPositive() {
		return salarystructureerrors.ErrBasicSalaryNotPositive
	}
	return nil
}

// applyComponents expects components that passed validateComponents.
func applyComponents(s *SalaryStructure, c SalaryComponents) {
	s.BasicSalary = c.BasicSalary.Round(2)
	s.HousingAllowance = c.HousingAllowance.Round(2)
	s.DearnessAllowance = c.DearnessAllowance.Round(2)
	s.OtherAllowances = decimal.Zero
	if c.OtherAllowances != nil {
		s.OtherAllowances = c.OtherAllowances.Round(2)
	}
	s.ProvidentFund = c.ProvidentFund.Round(2)
	s.Recalculate()
}

func mapToResponse(s SalaryStructure) SalaryStructureResponse {
	return SalaryStructureResponse{
		ID:                s.ID.String(),
		EmployeeID:        s.EmployeeID.String(),
		BasicSalary:       s.BasicSalary,
		HousingAllowance:  s.HousingAllowance,
		DearnessAllowance: s.DearnessAllowance,
		OtherAllowances:   s.OtherAllowances,
		ProvidentFund:     s.ProvidentFund,
		GrossSalary:       s.GrossSalary,
		NetSalary:         s.NetSalary,
		EffectiveFrom:     s.EffectiveFrom.Format("2006-01-02"),
		IsActive:          s.IsActive,
		CreatedAt:         s.CreatedAt.Format(time.RFC3339),
	}
}
