package attachment

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attachment_repo.go -destination=mock/attachment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attachment) error
	FindByEntity(ctx context.Context, organizationID, entityType, entityID string) ([]Attachment, error)
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

func (r *repository) Create(ctx context.Context, a *Attachment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FindByEntity lists newest first. An empty organizationID skips tenant scoping.
func (r *repository) FindByEntity(ctx context.Context, organizationID, entityType, entityID string) ([]Attachment, error) {
	var items []Attachment
	q := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID)
	if organizationID != "" {
		q = q.Where("organization_id = ?", organizationID)
	}
	err := q.Order("created_at DESC").Find(&items).Error
	return items, err
}
