package fundrequest

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"
	"go-payroll/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=fund_request_repo.go -destination=mock/fund_request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, fr *FundRequest) error
	FindByID(ctx context.Context, id string) (*FundRequest, error)
	FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*FundRequest, error)
	FindByIDForUpdate(ctx context.Context, id string) (*FundRequest, error)
	FindAllByOrganization(ctx context.Context, organizationID string) ([]FundRequest, error)
	FindAll(ctx context.Context, status string) ([]FundRequest, error)
	HasActiveSalaryRequest(ctx context.Context, organizationID, month string, year int) (bool, error)
	Update(ctx context.Context, fr *FundRequest) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, fr *FundRequest) error {
	return r.db.WithContext(ctx).Create(fr).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*FundRequest, error) {
	var fr FundRequest
	if err := r.db.WithContext(ctx).First(&fr, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &fr, nil
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*FundRequest, error) {
	var fr FundRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&fr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &fr, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*FundRequest, error) {
	var fr FundRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&fr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &fr, nil
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]FundRequest, error) {
	var frs []FundRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("created_at DESC").
		Find(&frs).Error
	return frs, err
}

func (r *repository) FindAll(ctx context.Context, status string) ([]FundRequest, error) {
	var frs []FundRequest
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&frs).Error
	return frs, err
}

// HasActiveSalaryRequest reports whether the period already holds a non-rejected salary request.
func (r *repository) HasActiveSalaryRequest(ctx context.Context, organizationID, month string, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FundRequest{}).
		Scopes(tenant.Scope(organizationID)).
		Where("request_type = ? AND month = ? AND year = ? AND status <> ?",
			TypeSalaryDisbursement, month, year, StatusRejected).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, fr *FundRequest) error {
	return r.db.WithContext(ctx).Save(fr).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&FundRequest{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
