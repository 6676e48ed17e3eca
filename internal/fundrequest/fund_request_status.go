package fundrequest

import fundrequesterrors "go-payroll/internal/fundrequest/errors"

const (
	StatusPending    = "PENDING"
	StatusApproved   = "APPROVED"
	StatusRejected   = "REJECTED"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
)

var transitions = map[string][]string{
	StatusPending:    {StatusApproved, StatusRejected},
	StatusApproved:   {StatusProcessing},
	StatusProcessing: {StatusCompleted},
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether from -> to is an edge of the request lifecycle.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo moves the request to status or fails with ErrInvalidTransition.
func (f *FundRequest) TransitionTo(status string) error {
	if !CanTransition(f.Status, status) {
		return fundrequesterrors.ErrInvalidTransition
	}
	f.Status = status
	return nil
}

// Deletable is false once a request is committed to disbursement.
func (f *FundRequest) Deletable() bool {
	switch f.Status {
	case StatusApproved, StatusProcessing, StatusCompleted:
		return false
	}
	return true
}
