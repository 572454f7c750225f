package service

import (
	"context"

	"ai-productivity-be/internal/pkg/logger"
	"ai-productivity-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService writes every activity event to its own log file.
type consumerService struct {
	subscriber  message.Subscriber
	topicName   string
	activityLog logger.ILogger
	logger      logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	activityLog logger.ILogger,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		topicName:   topicName,
		activityLog: activityLog,
		logger:      log,
	}
}

// Consume subscribes and returns; messages are handled on a background goroutine until ctx ends.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	// Invalid payloads are acked too; redelivery would never succeed.
	defer msg.Ack()

	evt, err := events.Unmarshal(msg.Payload)
	if err != nil {
		cs.logger.Warn("CONSUMER", "Dropping malformed activity event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	cs.activityLog.Info("ACTIVITY", evt.EventType(), map[string]interface{}{
		"message_id":  msg.UUID,
		"data":        evt.Payload(),
		"occurred_at": evt.Timestamp(),
	})
}
