package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-payroll/internal/events"
	"go-payroll/internal/notification"
	"go-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

func ConsumeNotifications(
	ctx context.Context,
	reader MessageReader,
	sender notification.Sender,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notification")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		var event events.NotificationRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode notification event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		msgCtx := contextutil.WithRequestID(ctx, event.RequestID)
		err = sender.Send(msgCtx, notification.Email{
			To:            event.Recipient,
			Subject:       event.Subject,
			Body:          event.Body,
			AttachmentURL: event.AttachmentURL,
		})
		if err != nil {
			if errors.Is(err, notification.ErrMissingRecipient) {
				log.Warn("notification without recipient, dropping",
					zap.String("request_id", event.RequestID),
					zap.String("kind", event.Kind),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("send notification failed",
				zap.String("request_id", event.RequestID),
				zap.String("kind", event.Kind),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Error(err))
			continue
		}

		log.Info("notification delivered",
			zap.String("request_id", event.RequestID),
			zap.String("kind", event.Kind),
		)
	}
}
