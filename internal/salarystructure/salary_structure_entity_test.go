package salarystructure_test

import (
	"testing"
	"time"

	"go-payroll/internal/salarystructure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSalaryStructure_Recalculate(t *testing.T) {
	s := salarystructure.SalaryStructure{
		BasicSalary:       decimal.RequireFromString("50000"),
		HousingAllowance:  decimal.RequireFromString("10000"),
		DearnessAllowance: decimal.RequireFromString("5000"),
		OtherAllowances:   decimal.RequireFromString("2500.50"),
		ProvidentFund:     decimal.RequireFromString("6000"),
	}

	s.Recalculate()

	assert.True(t, s.GrossSalary.Equal(decimal.RequireFromString("67500.50")), s.GrossSalary.String())
	assert.True(t, s.NetSalary.Equal(decimal.RequireFromString("61500.50")), s.NetSalary.String())
}

func TestMostRecent(t *testing.T) {
	jan := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, salarystructure.MostRecent(nil))
	})

	t.Run("latest effective date wins", func(t *testing.T) {
		got := salarystructure.MostRecent([]salarystructure.SalaryStructure{
			{EffectiveFrom: jan, CreatedAt: feb},
			{EffectiveFrom: feb, CreatedAt: jan},
		})
		assert.Equal(t, feb, got.EffectiveFrom)
	})

	t.Run("tie broken by creation time", func(t *testing.T) {
		got := salarystructure.MostRecent([]salarystructure.SalaryStructure{
			{EffectiveFrom: jan, CreatedAt: jan, BasicSalary: decimal.NewFromInt(1)},
			{EffectiveFrom: jan, CreatedAt: feb, BasicSalary: decimal.NewFromInt(2)},
		})
		assert.True(t, got.BasicSalary.Equal(decimal.NewFromInt(2)))
	})
}
