package unitofwork

import (
	"context"

	"ai-comicstory-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	StoryRepository() contract.StoryRepository
}
