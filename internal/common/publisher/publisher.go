package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/metrics"

	"github.com/Shopify/sarama"
)

const logIdentifier = "[GENERAL-PUBLISHER]"

//go:generate mockgen -source=./publisher.go -destination=./mock/publisher.go -package=publisher_mock

type Publisher interface {
	Publish(ctx context.Context, message any, opts ...PublishOption) error
}

type publishOptions struct {
	key     string
	headers map[string]string
}

type PublishOption func(*publishOptions)

func WithKey(key string) PublishOption {
	return func(opts *publishOptions) {
		opts.key = key
	}
}

func WithHeaders(headers map[string]string) PublishOption {
	return func(opts *publishOptions) {
		opts.headers = headers
	}
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
	metrics  metrics.Metrics
}

func NewPublisher(p sarama.SyncProducer, topic string, mtc metrics.Metrics) Publisher {
	return publisher{
		producer: p,
		topic:    topic,
		metrics:  mtc,
	}
}

func (d publisher) Publish(ctx context.Context, message any, opts ...PublishOption) (err error) {
	startTime := time.Now()
	defer func() {
		if d.metrics != nil {
			d.metrics.GetPublisherPrometheus().GenerateMetrics(startTime, d.topic, err)
		}
	}()

	options := &publishOptions{}
	for _, opt := range opts {
		opt(options)
	}

	msg, err := d.prepareMessage(message, options)
	if err != nil {
		log.Error(
			ctx,
			logIdentifier,
			log.String("status", "failed prepare message"),
			log.Err(err))
		return err
	}

	_, _, err = d.producer.SendMessage(msg)
	if err != nil {
		log.Error(
			ctx,
			logIdentifier,
			log.String("status", "failed send message"),
			log.Err(err))
		return err
	}

	log.Info(ctx,
		logIdentifier,
		log.String("status", "success publish message"),
		log.Time("timestamp", common.Now()),
		log.String("topic", d.topic),
	)

	return nil
}

func (d publisher) prepareMessage(message any, opts *publishOptions) (*sarama.ProducerMessage, error) {
	msgByte, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	producerMsg := &sarama.ProducerMessage{
		Topic: d.topic,
		Value: sarama.ByteEncoder(msgByte),
	}

	if opts != nil {
		if opts.key != "" {
			producerMsg.Key = sarama.StringEncoder(opts.key)
		}

		if len(opts.headers) > 0 {
			var headers []sarama.RecordHeader
			for key, value := range opts.headers {
				headers = append(headers, sarama.RecordHeader{
					Key:   []byte(key),
					Value: []byte(value),
				})
			}

			producerMsg.Headers = headers
		}
	}

	return producerMsg, nil
}
