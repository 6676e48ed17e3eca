package vendorpayment

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"
	"go-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=vendor_payment_repo.go -destination=mock/vendor_payment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *VendorPayment) error
	FindByID(ctx context.Context, organizationID, id string) (*VendorPayment, error)
	FindAllByVendor(ctx context.Context, vendorID string) ([]VendorPayment, error)
	FindAllByOrganization(ctx context.Context, organizationID string) ([]VendorPayment, error)
	UpdateStatus(ctx context.Context, id, status string) error
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

func (r *repository) Create(ctx context.Context, p *VendorPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, organizationID, id string) (*VendorPayment, error) {
	var p VendorPayment
	q := r.db.WithContext(ctx)
	if organizationID != "" {
		q = q.Scopes(tenant.Scope(organizationID))
	}
	if err := q.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAllByVendor(ctx context.Context, vendorID string) ([]VendorPayment, error) {
	var payments []VendorPayment
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("payment_date DESC, created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]VendorPayment, error) {
	var payments []VendorPayment
	q := r.db.WithContext(ctx)
	if organizationID != "" {
		q = q.Scopes(tenant.Scope(organizationID))
	}
	err := q.Order("payment_date DESC, created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).
		Model(&VendorPayment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
