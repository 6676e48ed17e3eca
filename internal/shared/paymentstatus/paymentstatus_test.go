package paymentstatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	for _, s := range []string{Pending, Processing, Completed, Failed, Cancelled} {
		assert.True(t, IsValid(s), s)
	}
	assert.False(t, IsValid("completed"))
	assert.False(t, IsValid("REFUNDED"))
	assert.True(t, IsValid(Normalize(" failed ")))
}
