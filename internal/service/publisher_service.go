package service

import (
	"context"

	"ai-productivity-be/internal/pkg/logger"
	"ai-productivity-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
	// PublishEvent never fails the caller: errors are logged and dropped.
	PublishEvent(ctx context.Context, evt events.Event)
}

type publisherService struct {
	publisher message.Publisher
	topicName string
	logger    logger.ILogger
}

func NewPublisherService(publisher message.Publisher, topicName string, log logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		topicName: topicName,
		logger:    log,
	}
}

func (ps *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return ps.publisher.Publish(ps.topicName, msg)
}

func (ps *publisherService) PublishEvent(ctx context.Context, evt events.Event) {
	payload, err := events.Marshal(evt)
	if err != nil {
		ps.logger.Error("PUBLISHER", "Failed to marshal event", map[string]interface{}{
			"type":  evt.EventType(),
			"error": err.Error(),
		})
		return
	}

	if err := ps.Publish(ctx, payload); err != nil {
		ps.logger.Error("PUBLISHER", "Failed to publish event", map[string]interface{}{
			"type":  evt.EventType(),
			"topic": ps.topicName,
			"error": err.Error(),
		})
	}
}
