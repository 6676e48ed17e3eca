package counter_test

import (
	"testing"

	"go-payroll/internal/shared/counter"

	"github.com/stretchr/testify/assert"
)

func TestTransactionID(t *testing.T) {
	orgA := "1a2b3c4d-0000-4000-8000-000000000001"
	orgB := "9f8e7d6c-0000-4000-8000-000000000002"

	assert.Equal(t, "TXN-202503-1A2B3C4D-00000001", counter.TransactionID("TXN", "202503", orgA, 1))
	assert.Equal(t, "VTX-20250101-9F8E7D6C-00000042", counter.TransactionID("VTX", "20250101", orgB, 42))

	t.Run("same sequence in two organizations differs", func(t *testing.T) {
		assert.NotEqual(t,
			counter.TransactionID("TXN", "202503", orgA, 1),
			counter.TransactionID("TXN", "202503", orgB, 1),
		)
	})
}

func TestOrganizationCode(t *testing.T) {
	assert.Equal(t, "1A2B3C4D", counter.OrganizationCode("1a2b3c4d-0000-4000-8000-000000000001"))
	assert.Equal(t, "ABC", counter.OrganizationCode("abc"))
}
