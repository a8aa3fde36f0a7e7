package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoryOwnedBy restricts a query to one user's stories.
type StoryOwnedBy struct {
	UserID uuid.UUID
}

func (s StoryOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
