package concern

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusOpen       = "OPEN"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
	StatusClosed     = "CLOSED"
)

const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

type Concern struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID      `gorm:"type:uuid;not null;index:idx_concern_org_status,priority:1"`
	EmployeeID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Subject        string         `gorm:"type:varchar(255);not null"`
	Description    string         `gorm:"type:text;not null"`
	Priority       string         `gorm:"type:varchar(10);not null"`
	Status         string         `gorm:"type:varchar(20);not null;index:idx_concern_org_status,priority:2"`
	AttachmentURL  *string        `gorm:"type:varchar(1000)"`
	Response       *string        `gorm:"type:text"`
	RespondedBy    *uuid.UUID     `gorm:"type:uuid"`
	RespondedAt    *time.Time     `gorm:"type:timestamptz"`
	CreatedAt      time.Time      `gorm:"not null;default:now()"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Concern) TableName() string {
	return "concerns"
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// HasResponse reports whether the organization has answered the concern.
func (c Concern) HasResponse() bool {
	return c.Response != nil && *c.Response != ""
}
