package concern

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=concern_repo.go -destination=mock/concern_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Concern) error
	FindByID(ctx context.Context, organizationID, id string) (*Concern, error)
	FindByIDForUpdate(ctx context.Context, organizationID, id string) (*Concern, error)
	FindByEmployee(ctx context.Context, organizationID, employeeID string) ([]Concern, error)
	FindByOrganization(ctx context.Context, organizationID, status string) ([]Concern, error)
	Update(ctx context.Context, c *Concern) error
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

func (r *repository) Create(ctx context.Context, c *Concern) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindByID(ctx context.Context, organizationID, id string) (*Concern, error) {
	return findByID(r.db.WithContext(ctx), organizationID, id)
}

func (r *repository) FindByIDForUpdate(ctx context.Context, organizationID, id string) (*Concern, error) {
	return findByID(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), organizationID, id)
}

func findByID(db *gorm.DB, organizationID, id string) (*Concern, error) {
	var c Concern
	err := db.Where("id = ? AND organization_id = ?", id, organizationID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByEmployee(ctx context.Context, organizationID, employeeID string) ([]Concern, error) {
	var items []Concern
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND employee_id = ?", organizationID, employeeID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindByOrganization(ctx context.Context, organizationID, status string) ([]Concern, error) {
	var items []Concern
	q := r.db.WithContext(ctx).Where("organization_id = ?", organizationID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *repository) Update(ctx context.Context, c *Concern) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Concern{}, "id = ?", id).Error
}
