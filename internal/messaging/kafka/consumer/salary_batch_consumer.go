package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-payroll/internal/events"
	"go-payroll/internal/notification"
	"go-payroll/internal/organization"
	"go-payroll/internal/report"
	"go-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

// ConsumeSalaryBatchCompleted publishes the salary register for every finished
// batch and tells the organization where to find it.
func ConsumeSalaryBatchCompleted(
	ctx context.Context,
	reader MessageReader,
	reports report.Service,
	organizations organization.Repository,
	notifier notification.Notifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_batch")
	log.Info("salary batch consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("salary batch consumer stopped")
				return
			}
			log.Error("fetch salary batch message failed", zap.Error(err))
			continue
		}

		var event events.SalaryBatchCompletedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode salary_batch_completed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		msgCtx := contextutil.WithRequestID(ctx, event.RequestID)
		file, err := reports.SalaryRegister(msgCtx, event.OrganizationID, event.Month, event.Year)
		if err != nil {
			log.Error("build salary register failed",
				zap.String("fund_request_id", event.FundRequestID),
				zap.String("organization_id", event.OrganizationID),
				zap.Error(err),
			)
			continue
		}

		url, err := reports.Publish(msgCtx, event.OrganizationID, file)
		if err != nil {
			log.Warn("publish salary register failed, notifying without link",
				zap.String("fund_request_id", event.FundRequestID),
				zap.Error(err),
			)
			url = ""
		}

		org, err := organizations.FindByID(msgCtx, event.OrganizationID)
		if err != nil {
			log.Error("load organization failed",
				zap.String("organization_id", event.OrganizationID),
				zap.Error(err),
			)
			continue
		}

		if err := notifier.Notify(msgCtx, notification.Message{
			Kind:          notification.KindSalaryRegisterReady,
			AggregateType: "fund_request",
			AggregateID:   event.FundRequestID,
			Recipient:     org.Email,
			Subject:       fmt.Sprintf("Salary disbursement completed for %s %d", event.Month, event.Year),
			Body: fmt.Sprintf(
				"Salary batch finished: %d paid, %d skipped, %d with warnings. The salary register is attached.",
				event.Created, event.Skipped, event.Warnings,
			),
			AttachmentURL: url,
		}); err != nil {
			log.Warn("notify salary register failed",
				zap.String("fund_request_id", event.FundRequestID),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit salary batch message failed", zap.Error(err))
			continue
		}

		log.Info("salary register published",
			zap.String("fund_request_id", event.FundRequestID),
			zap.String("organization_id", event.OrganizationID),
			zap.String("url", url),
		)
	}
}
