package salarystructure

import (
	"context"
	"database/sql"

	"go-payroll/internal/employee"
	"go-payroll/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=salary_structure_repo.go -destination=mock/salary_structure_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockEmployee(ctx context.Context, organizationID, employeeID string) (*employee.Employee, error)
	Create(ctx context.Context, s *SalaryStructure) error
	FindByID(ctx context.Context, organizationID, id string) (*SalaryStructure, error)
	FindByIDForUpdate(ctx context.Context, organizationID, id string) (*SalaryStructure, error)
	FindActiveByEmployee(ctx context.Context, employeeID string) ([]SalaryStructure, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryStructure, error)
	DeactivateAllByEmployee(ctx context.Context, employeeID string) (int64, error)
	Update(ctx context.Context, s *SalaryStructure) error
	Deactivate(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

// LockEmployee takes a row lock on the employee so concurrent activations serialize.
// An empty organizationID skips the tenant check.
func (r *repository) LockEmployee(ctx context.Context, organizationID, employeeID string) (*employee.Employee, error) {
	var empl employee.Employee
	q := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", employeeID)
	if organizationID != "" {
		q = q.Where("organization_id = ?", organizationID)
	}
	if err := q.First(&empl).Error; err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Create(ctx context.Context, s *SalaryStructure) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, organizationID, id string) (*SalaryStructure, error) {
	return r.findByID(r.db.WithContext(ctx), organizationID, id)
}

func (r *repository) FindByIDForUpdate(ctx context.Context, organizationID, id string) (*SalaryStructure, error) {
	return r.findByID(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "salary_structures"}}), organizationID, id)
}

func (r *repository) findByID(db *gorm.DB, organizationID, id string) (*SalaryStructure, error) {
	var s SalaryStructure
	q := db.Model(&SalaryStructure{})
	if organizationID != "" {
		q = q.Joins("JOIN employees ON employees.id = salary_structures.employee_id").
			Where("employees.organization_id = ?", organizationID)
	}
	if err := q.Where("salary_structures.id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindActiveByEmployee(ctx context.Context, employeeID string) ([]SalaryStructure, error) {
	var structures []SalaryStructure
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND is_active = ?", employeeID, true).
		Order("effective_from DESC, created_at DESC").
		Find(&structures).Error
	return structures, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryStructure, error) {
	var structures []SalaryStructure
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_from DESC, created_at DESC").
		Find(&structures).Error
	return structures, err
}

func (r *repository) DeactivateAllByEmployee(ctx context.Context, employeeID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&SalaryStructure{}).
		Where("employee_id = ? AND is_active = ?", employeeID, true).
		Updates(map[string]any{"is_active": false, "updated_at": gorm.Expr("now()")})
	return res.RowsAffected, res.Error
}

// Update writes the component and derived columns of an active structure only.
// It returns gorm.ErrRecordNotFound when the row is missing or no longer active.
func (r *repository) Update(ctx context.Context, s *SalaryStructure) error {
	res := r.db.WithContext(ctx).
		Model(&SalaryStructure{}).
		Where("id = ? AND is_active = ?", s.ID, true).
		Updates(map[string]any{
			"basic_salary":       s.BasicSalary,
			"housing_allowance":  s.HousingAllowance,
			"dearness_allowance": s.DearnessAllowance,
			"other_allowances":   s.OtherAllowances,
			"provident_fund":     s.ProvidentFund,
			"gross_salary":       s.GrossSalary,
			"net_salary":         s.NetSalary,
			"effective_from":     s.EffectiveFrom,
			"updated_at":         gorm.Expr("now()"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Deactivate(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&SalaryStructure{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": gorm.Expr("now()")})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
