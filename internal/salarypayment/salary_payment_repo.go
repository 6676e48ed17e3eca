package salarypayment

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"
	"go-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_payment_repo.go -destination=mock/salary_payment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *SalaryPayment) error
	ExistsForPeriod(ctx context.Context, employeeID, month string, year int) (bool, error)
	FindByID(ctx context.Context, organizationID, id string) (*SalaryPayment, error)
	FindAllByEmployee(ctx context.Context, employeeID string, year *int) ([]SalaryPayment, error)
	FindAllByOrganizationPeriod(ctx context.Context, organizationID, month string, year int) ([]SalaryPayment, error)
	FindAllByFundRequest(ctx context.Context, fundRequestID string) ([]SalaryPayment, error)
	UpdateSlip(ctx context.Context, id, slipURL string) error
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

func (r *repository) Create(ctx context.Context, p *SalaryPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) ExistsForPeriod(ctx context.Context, employeeID, month string, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&SalaryPayment{}).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		Count(&count).Error
	return count > 0, err
}

// FindByID scopes to organizationID unless it is empty.
func (r *repository) FindByID(ctx context.Context, organizationID, id string) (*SalaryPayment, error) {
	var p SalaryPayment
	q := r.db.WithContext(ctx)
	if organizationID != "" {
		q = q.Scopes(tenant.Scope(organizationID))
	}
	if err := q.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string, year *int) ([]SalaryPayment, error) {
	var payments []SalaryPayment
	q := r.db.WithContext(ctx).Where("employee_id = ?", employeeID)
	if year != nil {
		q = q.Where("year = ?", *year)
	}
	err := q.Order("year DESC, payment_date DESC").Find(&payments).Error
	return payments, err
}

func (r *repository) FindAllByOrganizationPeriod(ctx context.Context, organizationID, month string, year int) ([]SalaryPayment, error) {
	var payments []SalaryPayment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("month = ? AND year = ?", month, year).
		Order("transaction_id ASC").
		Find(&payments).Error
	return payments, err
}

func (r *repository) FindAllByFundRequest(ctx context.Context, fundRequestID string) ([]SalaryPayment, error) {
	var payments []SalaryPayment
	err := r.db.WithContext(ctx).
		Where("fund_request_id = ?", fundRequestID).
		Order("transaction_id ASC").
		Find(&payments).Error
	return payments, err
}

func (r *repository) UpdateSlip(ctx context.Context, id, slipURL string) error {
	return r.db.WithContext(ctx).
		Model(&SalaryPayment{}).
		Where("id = ?", id).
		Update("slip_url", slipURL).Error
}
