package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-comicstory-be/internal/dto"
	"ai-comicstory-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (ps *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return ps.publisher.Publish(ps.topicName, msg)
}

// publishStoryEvent is best effort: failures are logged and never returned.
func publishStoryEvent(
	ctx context.Context,
	publisher IPublisherService,
	log logger.ILogger,
	eventType string,
	storyId, userId uuid.UUID,
	data map[string]interface{},
) {
	if publisher == nil {
		return
	}

	payload, err := json.Marshal(dto.StoryEventMessage{
		Type:       eventType,
		StoryId:    storyId,
		UserId:     userId,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		log.Warn("Events", "Failed to encode story event", map[string]interface{}{"type": eventType, "error": err.Error()})
		return
	}

	if err := publisher.Publish(ctx, payload); err != nil {
		log.Warn("Events", "Failed to publish story event", map[string]interface{}{
			"type":     eventType,
			"story_id": storyId.String(),
			"error":    err.Error(),
		})
	}
}
