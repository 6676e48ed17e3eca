package organization

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organization struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                string         `gorm:"type:varchar(150);not null"`
	Email               string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_organization_email"`
	Phone               string         `gorm:"type:varchar(30)"`
	Address             string         `gorm:"type:text"`
	RegistrationNumber  string         `gorm:"type:varchar(100)"`
	Verified            bool           `gorm:"not null;index"`
	VerificationRemarks *string        `gorm:"type:varchar(500)"`
	VerifiedAt          *time.Time     `gorm:"type:timestamptz"`
	CreatedAt           time.Time      `gorm:"not null;default:now()"`
	UpdatedAt           time.Time      `gorm:"not null;default:now()"`
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

func (Organization) TableName() string {
	return "organizations"
}
