package syncorderqueue

import (
	"context"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/graceful"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/kafka"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/metrics"
	"github.com/pmatchdesk/go-cabinet-sync/internal/config"
	"github.com/pmatchdesk/go-cabinet-sync/internal/services"
)

const logMessage = "[KAFKA-CONSUMER] [SYNC-ORDER-QUEUE] "

// Consumer reads sync order tasks from the queue and hands them to the
// sync service for processing.
type Consumer struct {
	base *kafka.BaseConsumer
}

var _ graceful.ProcessStartStopper = (*Consumer)(nil)

func New(ctx context.Context, cfg config.Config, ss services.SyncService, mtc metrics.Metrics) (*Consumer, error) {
	handler := NewSyncOrderQueueHandler(ss)

	base, err := kafka.NewBaseConsumer(kafka.BaseConsumerConfig{
		Ctx:           ctx,
		Config:        cfg,
		Metrics:       mtc,
		Handler:       handler,
		LogPrefix:     logMessage,
		Topic:         cfg.MessageBroker.KafkaConsumer.TopicSyncOrder,
		ConsumerGroup: cfg.MessageBroker.KafkaConsumer.ConsumerGroupSyncOrder,
	})
	if err != nil {
		return nil, err
	}

	log.Info(ctx, logMessage, log.String("status", "success init kafka consumer"))

	return &Consumer{base: base}, nil
}

func (c *Consumer) Start() graceful.ProcessStarter {
	return c.base.Start()
}

func (c *Consumer) Stop() graceful.ProcessStopper {
	return c.base.Stop()
}
