package kafka

import (
	"context"
	"time"

	"github.com/Shopify/sarama"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/metrics"
)

type BaseHandler struct {
	ClientID        string
	ConsumerMetrics *metrics.ConsumerMetrics
	LogPrefix       string
}

func (b *BaseHandler) CreateLogField(msg *sarama.ConsumerMessage) []log.Field {
	return []log.Field{
		log.Time("timestamp", msg.Timestamp),
		log.String("topic", msg.Topic),
		log.String("key", string(msg.Key)),
		log.Int32("partition", msg.Partition),
		log.Int64("offset", msg.Offset),
		log.String("message-claimed", string(msg.Value)),
	}
}

func (b *BaseHandler) Ack(session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	session.MarkMessage(message, "")
	log.Debug(
		context.Background(),
		b.LogPrefix+"[ACK]",
		log.String("topic", message.Topic),
		log.Int32("partition", message.Partition),
		log.Int64("offset", message.Offset),
	)
}

// Nack marks the message anyway so the partition keeps moving; the
// failed payload is kept in the log for manual replay.
func (b *BaseHandler) Nack(ctx context.Context, session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage, causeErr error) {
	logField := b.CreateLogField(message)
	logField = append(logField, log.Err(causeErr))

	session.MarkMessage(message, "")
	log.Warn(ctx, b.LogPrefix+"[NACK]", logField...)
}

func (b *BaseHandler) RecordMetrics(startTime time.Time, message *sarama.ConsumerMessage, err error) {
	if b.ConsumerMetrics != nil {
		b.ConsumerMetrics.GenerateMetrics(startTime, message, err)
	}
}
