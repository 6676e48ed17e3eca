package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive     = "ACTIVE"
	StatusOnLeave    = "ON_LEAVE"
	StatusInactive   = "INACTIVE"
	StatusTerminated = "TERMINATED"
)

// PayableStatuses are the statuses that take part in a salary batch.
var PayableStatuses = []string{StatusActive, StatusOnLeave}

type Employee struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrganizationID    uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:uq_employee_number,priority:1"`
	EmployeeNumber    string         `gorm:"type:varchar(30);not null;uniqueIndex:uq_employee_number,priority:2"`
	FullName          string         `gorm:"type:varchar(150);not null"`
	Email             string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	Phone             string         `gorm:"type:varchar(30)"`
	Designation       string         `gorm:"type:varchar(100)"`
	Department        string         `gorm:"type:varchar(100)"`
	HireDate          time.Time      `gorm:"type:date;not null"`
	Status            string         `gorm:"type:varchar(20);not null;index"`
	BankAccountNumber string         `gorm:"type:varchar(34)"`
	BankName          string         `gorm:"type:varchar(100)"`
	IFSCCode          string         `gorm:"type:varchar(20)"`
	CreatedAt         time.Time      `gorm:"not null;default:now()"`
	UpdatedAt         time.Time      `gorm:"not null;default:now()"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusOnLeave, StatusInactive, StatusTerminated:
		return true
	}
	return false
}

func IsPayable(status string) bool {
	return status == StatusActive || status == StatusOnLeave
}
