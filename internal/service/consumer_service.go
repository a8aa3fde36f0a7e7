package service

import (
	"context"
	"encoding/json"

	"ai-comicstory-be/internal/dto"
	"ai-comicstory-be/internal/pkg/logger"
	"ai-comicstory-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

const consumerModule = "EventConsumer"

// EventRelay forwards an event to an external bus. *nats.Publisher satisfies it.
type EventRelay interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	relay      EventRelay
	logger     logger.ILogger
}

// NewConsumerService drains the story event topic. relay may be nil when no external bus is configured.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	relay EventRelay,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		relay:      relay,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.StoryEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error(consumerModule, "Failed to unmarshal story event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		// malformed messages would never succeed on redelivery
		msg.Ack()
		return
	}

	cs.logger.Info(consumerModule, "Story event", map[string]interface{}{
		"type":     payload.Type,
		"story_id": payload.StoryId.String(),
		"user_id":  payload.UserId.String(),
	})

	if cs.relay != nil {
		data := map[string]interface{}{
			"story_id": payload.StoryId.String(),
			"user_id":  payload.UserId.String(),
		}
		for k, v := range payload.Data {
			data[k] = v
		}

		evt := events.BaseEvent{
			Type:       payload.Type,
			Data:       data,
			OccurredAt: payload.OccurredAt,
		}
		if err := cs.relay.Publish(ctx, evt); err != nil {
			cs.logger.Warn(consumerModule, "Failed to relay story event", map[string]interface{}{
				"type":  payload.Type,
				"error": err.Error(),
			})
		}
	}

	msg.Ack()
}
