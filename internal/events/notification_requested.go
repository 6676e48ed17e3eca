package events

import "time"

const NotificationRequestedTopic = "payroll.notification.requested.v1"

type NotificationRequestedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	Kind          string    `json:"kind"`
	Recipient     string    `json:"recipient"`
	Subject       string    `json:"subject"`
	Body          string    `json:"body"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
