package vendors

import (
	"context"
	"database/sql"
	"errors"

	"go-payroll/internal/shared/connection"
	"go-payroll/internal/shared/pgerr"
	"go-payroll/internal/tenant"
	vendorerrors "go-payroll/internal/vendors/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=vendor_repo.go -destination=mock/vendor_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, v *Vendor) error
	FindByID(ctx context.Context, id string) (*Vendor, error)
	FindAllByOrganization(ctx context.Context, organizationID string) ([]Vendor, error)
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

func (r *repository) Create(ctx context.Context, v *Vendor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Vendor, error) {
	var v Vendor
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]Vendor, error) {
	var vendors []Vendor
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("name ASC").
		Find(&vendors).Error
	return vendors, err
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return vendorerrors.ErrVendorNotFound
	}
	if pgerr.UniqueViolation(err, "uq_vendor_name") {
		return vendorerrors.ErrVendorAlreadyExists
	}
	return err
}
