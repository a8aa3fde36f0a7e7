package service

import (
	"context"

	"ai-comicstory-be/internal/dto"
	"ai-comicstory-be/internal/entity"
	"ai-comicstory-be/internal/pkg/apperror"
	"ai-comicstory-be/internal/pkg/logger"
	"ai-comicstory-be/internal/repository/contract"
	"ai-comicstory-be/internal/repository/specification"
	"ai-comicstory-be/internal/repository/unitofwork"
	"ai-comicstory-be/pkg/comic"
	"ai-comicstory-be/pkg/events"
	"ai-comicstory-be/pkg/llm"

	"github.com/google/uuid"
)

const comicModule = "ComicService"

type IComicService interface {
	Generate(ctx context.Context, userId uuid.UUID, storyId string) (*dto.GeneratePanelsResponse, error)
}

type comicService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	illustrator      *comic.Illustrator
	lock             contract.GenerationLock
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewComicService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	illustrator *comic.Illustrator,
	lock contract.GenerationLock,
	publisherService IPublisherService,
	log logger.ILogger,
) IComicService {
	return &comicService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		illustrator:      illustrator,
		lock:             lock,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *comicService) Generate(ctx context.Context, userId uuid.UUID, storyId string) (*dto.GeneratePanelsResponse, error) {
	id, err := uuid.Parse(storyId)
	if err != nil {
		return nil, apperror.New(apperror.ErrNotFound, "Story not found")
	}

	// The generation outlives a disconnected client
	ctx = context.WithoutCancel(ctx)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	story, err := uow.StoryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.StoryOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrPersistence, "Failed to fetch story", err)
	}
	if story == nil {
		return nil, apperror.New(apperror.ErrNotFound, "Story not found")
	}

	lockKey := story.Id.String()
	lockToken, acquired, err := s.lock.Acquire(ctx, lockKey)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrGeneration, "Generation lock unavailable", err)
	}
	if !acquired {
		return nil, apperror.New(apperror.ErrGenerationInProgress, "Comic generation already in progress for this story")
	}
	defer s.lock.Release(ctx, lockKey, lockToken)

	s.logger.Info(comicModule, "Generating comic", map[string]interface{}{
		"story_id": story.Id.String(),
		"theme":    story.Theme,
	})

	raw, err := s.llmProvider.Chat(ctx, comic.BuildMessages(story.Title, story.Notes, story.Theme))
	if err != nil {
		s.logger.Error(comicModule, "Text generation failed", map[string]interface{}{
			"story_id": story.Id.String(),
			"error":    err.Error(),
		})
		return nil, apperror.Wrap(apperror.ErrGeneration, "Failed to generate comic panels", err)
	}

	parsed, err := comic.ParsePanels(raw)
	if err != nil {
		s.logger.Error(comicModule, "Failed to parse AI response", map[string]interface{}{
			"story_id": story.Id.String(),
			"error":    err.Error(),
		})
		return nil, apperror.Wrap(apperror.ErrGeneration, "Invalid AI response format", err)
	}

	illustrated := s.illustrator.Illustrate(ctx, story.Theme, parsed)

	panels := make([]entity.Panel, len(illustrated))
	missing := 0
	for i, p := range illustrated {
		panels[i] = entity.Panel{
			SceneDescription: p.SceneDescription,
			Text:             p.Text,
			ImageUrl:         p.ImageUrl,
		}
		if p.ImageUrl == nil {
			missing++
		}
	}

	rows, err := uow.StoryRepository().UpdatePanels(ctx, story.Id, userId, panels)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrPersistence, "Failed to save comic panels", err)
	}
	if rows == 0 {
		return nil, apperror.New(apperror.ErrNotFound, "Story not found")
	}

	s.logger.Info(comicModule, "Comic generated", map[string]interface{}{
		"story_id":       story.Id.String(),
		"panels":         len(panels),
		"missing_images": missing,
	})

	publishStoryEvent(ctx, s.publisherService, s.logger, events.ComicGenerated, story.Id, userId, map[string]interface{}{
		"panels":         len(panels),
		"missing_images": missing,
	})

	return &dto.GeneratePanelsResponse{
		Panels: toPanelResponses(panels),
	}, nil
}
