package syncorderqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/kafka"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
	"github.com/pmatchdesk/go-cabinet-sync/internal/services"
)

type SyncOrderQueueHandler struct {
	kafka.BaseHandler
	ss services.SyncService
}

func NewSyncOrderQueueHandler(ss services.SyncService) sarama.ConsumerGroupHandler {
	return &SyncOrderQueueHandler{
		BaseHandler: kafka.BaseHandler{LogPrefix: logMessage},
		ss:          ss,
	}
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (h *SyncOrderQueueHandler) Setup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (h *SyncOrderQueueHandler) Cleanup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
func (h *SyncOrderQueueHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			ctx := log.SetCorrelationId(session.Context(), uuid.New().String())
			start := time.Now()

			err := h.processMessage(ctx, message)
			h.RecordMetrics(start, message, err)
			if err != nil {
				h.Nack(ctx, session, message, err)
				continue
			}

			logField := h.CreateLogField(message)
			logField = append(logField, log.Duration("response-time", time.Since(start)))
			log.Info(ctx, logMessage, logField...)
			h.Ack(session, message)
		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *SyncOrderQueueHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var (
		payload    models.SyncOrderPublisher
		logMessage = "[PROCESS-MESSAGE]"
	)

	logField := h.CreateLogField(message)

	if err := json.Unmarshal(message.Value, &payload); err != nil {
		logField = append(logField, log.Err(err))
		log.Warn(ctx, logMessage, logField...)
		return fmt.Errorf("error unmarshal json: %w", err)
	}

	if payload.Task != models.SyncOrderTaskName {
		logField = append(logField,
			log.String("task", payload.Task),
			log.Err(errors.New("unsupported task")))
		log.Warn(ctx, logMessage, logField...)
		return nil
	}

	id, err := strconv.ParseInt(payload.ID, 10, 64)
	if err != nil {
		logField = append(logField, log.Err(err))
		log.Warn(ctx, logMessage, logField...)
		return fmt.Errorf("unable to parse id payload to int64: %w", err)
	}

	if err := h.ss.ProcessOrder(ctx, id); err != nil {
		logField = append(logField, log.Err(err))
		log.Warn(ctx, logMessage, logField...)
		return fmt.Errorf("error processing sync order: %w", err)
	}

	log.Info(ctx, logMessage, logField...)
	return nil
}
