// Package notification queues outbound messages through the transactional
// outbox and delivers them from the consumer side.
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	KindFundRequestApproved   = "FUND_REQUEST_APPROVED"
	KindFundRequestRejected   = "FUND_REQUEST_REJECTED"
	KindSalaryCredited        = "SALARY_CREDITED"
	KindSalaryRegisterReady   = "SALARY_REGISTER_READY"
	KindOrganizationVerified  = "ORGANIZATION_VERIFIED"
	KindOrganizationRejected  = "ORGANIZATION_VERIFICATION_REJECTED"
	KindEmployeeOnboarded     = "EMPLOYEE_ONBOARDED"
	KindConcernResponded      = "CONCERN_RESPONDED"
	notificationRequestedType = "notification_requested"
)

var ErrMissingRecipient = errors.New("notification recipient is required")

type Message struct {
	Kind          string
	AggregateType string
	AggregateID   string
	Recipient     string
	Subject       string
	Body          string
	AttachmentURL string
}

//go:generate mockgen -source=notification.go -destination=mock/notification_mock.go -package=mock
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

type OutboxNotifier struct {
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewOutboxNotifier(outbox kafka.OutboxRepository, logger ...*zap.Logger) *OutboxNotifier {
	l := zap.L().Named("notification.outbox")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.outbox")
	}
	return &OutboxNotifier{outbox: outbox, logger: l}
}

// Notify enqueues msg. Delivery happens asynchronously in the consumer.
func (n *OutboxNotifier) Notify(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.Recipient) == "" {
		return ErrMissingRecipient
	}

	rid := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.NotificationRequestedEvent{
		EventType:     notificationRequestedType,
		RequestID:     rid,
		Kind:          msg.Kind,
		Recipient:     msg.Recipient,
		Subject:       msg.Subject,
		Body:          msg.Body,
		AttachmentURL: msg.AttachmentURL,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	if err := n.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: msg.AggregateType,
		AggregateID:   msg.AggregateID,
		EventType:     notificationRequestedType,
		Topic:         events.NotificationRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		n.logger.Error("enqueue notification failed",
			zap.String("request_id", rid),
			zap.String("kind", msg.Kind),
			zap.String("aggregate_id", msg.AggregateID),
			zap.Error(err),
		)
		return err
	}

	n.logger.Debug("notification queued",
		zap.String("request_id", rid),
		zap.String("kind", msg.Kind),
		zap.String("aggregate_id", msg.AggregateID),
	)
	return nil
}
