// Package paymentstatus holds the status values shared by salary and vendor payment records.
package paymentstatus

import "strings"

const (
	Pending    = "PENDING"
	Processing = "PROCESSING"
	Completed  = "COMPLETED"
	Failed     = "FAILED"
	Cancelled  = "CANCELLED"
)

var all = []string{Pending, Processing, Completed, Failed, Cancelled}

func IsValid(s string) bool {
	for _, v := range all {
		if v == s {
			return true
		}
	}
	return false
}

// Normalize upper-cases and trims s. The result is not validated.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
