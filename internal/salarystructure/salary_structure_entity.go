package salarystructure

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalaryStructure struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_salary_structures_employee_effective,priority:1"`
	BasicSalary       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	HousingAllowance  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DearnessAllowance decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OtherAllowances   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ProvidentFund     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	GrossSalary       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NetSalary         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EffectiveFrom     time.Time       `gorm:"type:date;not null;index:idx_salary_structures_employee_effective,priority:2,sort:desc"`
	IsActive          bool            `gorm:"not null"`
	CreatedAt         time.Time       `gorm:"not null;default:now()"`
	UpdatedAt         time.Time       `gorm:"not null;default:now()"`
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

// Recalculate derives gross and net from the components.
func (s *SalaryStructure) Recalculate() {
	s.GrossSalary = s.BasicSalary.
		Add(s.HousingAllowance).
		Add(s.DearnessAllowance).
		Add(s.OtherAllowances)
	s.NetSalary = s.GrossSalary.Sub(s.ProvidentFund)
}

// MostRecent picks the structure with the latest EffectiveFrom, then the latest CreatedAt.
func MostRecent(structures []SalaryStructure) *SalaryStructure {
	var best *SalaryStructure
	for i := range structures {
		s := &structures[i]
		if best == nil ||
			s.EffectiveFrom.After(best.EffectiveFrom) ||
			(s.EffectiveFrom.Equal(best.EffectiveFrom) && s.CreatedAt.After(best.CreatedAt)) {
			best = s
		}
	}
	return best
}
