package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Story struct {
	Id        uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID                  `gorm:"type:uuid;not null;index:idx_stories_user_created,priority:1"`
	Title     string                     `gorm:"type:varchar(255);not null"`
	Notes     string                     `gorm:"type:text;not null"`
	Theme     string                     `gorm:"type:varchar(32);not null;default:'classic'"`
	Panels    datatypes.JSONSlice[Panel] `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time                  `gorm:"autoCreateTime;index:idx_stories_user_created,priority:2"`
}

func (Story) TableName() string {
	return "stories"
}

// BeforeCreate assigns the id in Go so the table works on drivers without gen_random_uuid().
func (s *Story) BeforeCreate(tx *gorm.DB) error {
	if s.Id == uuid.Nil {
		s.Id = uuid.New()
	}
	return nil
}

// Panel is the JSON element stored inside stories.panels.
type Panel struct {
	SceneDescription string  `json:"sceneDescription"`
	Text             string  `json:"text"`
	ImageUrl         *string `json:"imageUrl"`
}
