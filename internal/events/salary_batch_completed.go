package events

import "time"

const SalaryBatchCompletedTopic = "payroll.salary.batch.completed.v1"

type SalaryBatchCompletedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	FundRequestID  string    `json:"fund_request_id"`
	OrganizationID string    `json:"organization_id"`
	Month          string    `json:"month"`
	Year           int       `json:"year"`
	Created        int       `json:"created"`
	Skipped        int       `json:"skipped"`
	Warnings       int       `json:"warnings"`
	OccurredAt     time.Time `json:"occurred_at"`
}
