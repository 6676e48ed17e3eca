package producer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/messaging/kafka"
	kafkaMock "go-payroll/internal/messaging/kafka/mock"
	"go-payroll/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestPublishPending(t *testing.T) {
	ctx := context.Background()

	t.Run("marks sent and failed events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failTopic: "broken.topic"}

		repo.EXPECT().ListPending(ctx, 10).Return([]kafka.OutboxEvent{
			{ID: "evt-1", RequestID: "rid-1", AggregateID: "sp-1", Topic: "payroll.notification.requested.v1", EventType: "notification_requested", Payload: []byte(`{}`)},
			{ID: "evt-2", AggregateID: "sp-2", Topic: "broken.topic", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "evt-1").Return(nil)
		repo.EXPECT().MarkFailed(ctx, "evt-2", "broker unavailable").Return(nil)

		sent, err := producer.PublishPending(ctx, repo, writer, zap.NewNop(), 10)
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		if assert.Len(t, writer.written, 1) {
			msg := writer.written[0]
			assert.Equal(t, []byte("sp-1"), msg.Key)
			assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("rid-1")})
		}
	})

	t.Run("list failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		sent, err := producer.PublishPending(ctx, repo, &fakeWriter{}, zap.NewNop(), 0)
		assert.EqualError(t, err, "db down")
		assert.Zero(t, sent)
	})
}

func TestPurgeSent(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("reports purged rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().PurgeSent(ctx, cutoff).Return(int64(3), nil)

		n, err := producer.PurgeSent(ctx, repo, zap.NewNop(), cutoff)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().PurgeSent(ctx, cutoff).Return(int64(0), errors.New("db down"))

		_, err := producer.PurgeSent(ctx, repo, zap.NewNop(), cutoff)

		assert.EqualError(t, err, "db down")
	})
}
