package fundrequest_test

import (
	"testing"

	"go-payroll/internal/fundrequest"
	fundrequesterrors "go-payroll/internal/fundrequest/errors"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	statuses := []string{
		fundrequest.StatusPending,
		fundrequest.StatusApproved,
		fundrequest.StatusRejected,
		fundrequest.StatusProcessing,
		fundrequest.StatusCompleted,
	}
	legal := map[[2]string]bool{
		{fundrequest.StatusPending, fundrequest.StatusApproved}:     true,
		{fundrequest.StatusPending, fundrequest.StatusRejected}:     true,
		{fundrequest.StatusApproved, fundrequest.StatusProcessing}:  true,
		{fundrequest.StatusProcessing, fundrequest.StatusCompleted}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			assert.Equal(t, legal[[2]string{from, to}], fundrequest.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestFundRequest_TransitionTo(t *testing.T) {
	fr := &fundrequest.FundRequest{Status: fundrequest.StatusApproved}

	assert.ErrorIs(t, fr.TransitionTo(fundrequest.StatusCompleted), fundrequesterrors.ErrInvalidTransition)
	assert.Equal(t, fundrequest.StatusApproved, fr.Status)

	assert.NoError(t, fr.TransitionTo(fundrequest.StatusProcessing))
	assert.Equal(t, fundrequest.StatusProcessing, fr.Status)
}

func TestFundRequest_Deletable(t *testing.T) {
	cases := map[string]bool{
		fundrequest.StatusPending:    true,
		fundrequest.StatusRejected:   true,
		fundrequest.StatusApproved:   false,
		fundrequest.StatusProcessing: false,
		fundrequest.StatusCompleted:  false,
	}
	for status, want := range cases {
		fr := fundrequest.FundRequest{Status: status}
		assert.Equal(t, want, fr.Deletable(), status)
	}
}
