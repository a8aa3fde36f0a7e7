package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateStoryRequest struct {
	Title string `json:"title" validate:"required,notblank"`
	Notes string `json:"notes" validate:"required,notblank"`
	Theme string `json:"theme" validate:"omitempty,oneof=classic modern vintage"`
}

type CreateStoryResponse struct {
	Id uuid.UUID `json:"id"`
}

type PanelResponse struct {
	SceneDescription string  `json:"sceneDescription"`
	Text             string  `json:"text"`
	ImageUrl         *string `json:"imageUrl"`
}

type StoryResponse struct {
	Id        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Notes     string          `json:"notes"`
	Theme     string          `json:"theme"`
	Panels    []PanelResponse `json:"panels"`
	CreatedAt time.Time       `json:"created_at"`
}

type ShowStoryResponse struct {
	Story *StoryResponse `json:"story"`
}

type ListStoriesResponse struct {
	Stories []*StoryResponse `json:"stories"`
}

type DeleteStoryResponse struct {
	Success bool `json:"success"`
}

type GeneratePanelsResponse struct {
	Panels []PanelResponse `json:"panels"`
}

// StoryEventMessage is the payload carried on the story event topic.
type StoryEventMessage struct {
	Type       string                 `json:"type"`
	StoryId    uuid.UUID              `json:"story_id"`
	UserId     uuid.UUID              `json:"user_id"`
	Data       map[string]interface{} `json:"data,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}
