package vendors

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type Vendor struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrganizationID    uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:uq_vendor_name,priority:1"`
	Name              string         `gorm:"type:varchar(150);not null;uniqueIndex:uq_vendor_name,priority:2"`
	Email             string         `gorm:"type:varchar(255)"`
	Phone             string         `gorm:"type:varchar(30)"`
	Address           string         `gorm:"type:text"`
	ServiceType       string         `gorm:"type:varchar(100)"`
	BankAccountNumber string         `gorm:"type:varchar(34)"`
	BankName          string         `gorm:"type:varchar(100)"`
	IFSCCode          string         `gorm:"type:varchar(20)"`
	TaxID             string         `gorm:"type:varchar(30)"`
	Status            string         `gorm:"type:varchar(20);not null"`
	CreatedAt         time.Time      `gorm:"not null;default:now()"`
	UpdatedAt         time.Time      `gorm:"not null;default:now()"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (Vendor) TableName() string {
	return "vendors"
}
