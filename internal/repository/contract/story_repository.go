package contract

import (
	"context"

	"ai-comicstory-be/internal/entity"
	"ai-comicstory-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StoryRepository interface {
	Create(ctx context.Context, story *entity.Story) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Story, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Story, error)
	// DeleteOwned removes at most one row and reports how many were affected.
	DeleteOwned(ctx context.Context, id, userId uuid.UUID) (int64, error)
	// UpdatePanels replaces the whole panel sequence in one statement.
	UpdatePanels(ctx context.Context, id, userId uuid.UUID, panels []entity.Panel) (int64, error)
}
