package events

import "time"

const (
	StoryCreated   = "STORY_CREATED"
	StoryDeleted   = "STORY_DELETED"
	ComicGenerated = "COMIC_GENERATED"
)

// Event is anything that can be relayed to the external bus.
type Event interface {
	// EventType doubles as the subject suffix, e.g. events.STORY_CREATED.
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
