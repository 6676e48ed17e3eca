package rbac

import (
	"context"

	"gorm.io/gorm"
)

// Grant is an extra role permission stored in the database on top of the
// built-in policy.
type Grant struct {
	ID       uint   `gorm:"primaryKey"`
	Role     string `gorm:"type:varchar(30);not null;uniqueIndex:uq_role_permission,priority:1"`
	Resource string `gorm:"type:varchar(50);not null;uniqueIndex:uq_role_permission,priority:2"`
	Action   string `gorm:"type:varchar(30);not null;uniqueIndex:uq_role_permission,priority:3"`
}

func (Grant) TableName() string {
	return "role_permissions"
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListGrants(ctx context.Context) ([]Grant, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListGrants(ctx context.Context) ([]Grant, error) {
	var grants []Grant
	err := r.db.WithContext(ctx).Order("role, resource, action").Find(&grants).Error
	return grants, err
}
