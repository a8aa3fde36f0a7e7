package service

import (
	"context"
	"strings"
	"time"

	"ai-comicstory-be/internal/dto"
	"ai-comicstory-be/internal/entity"
	"ai-comicstory-be/internal/pkg/apperror"
	"ai-comicstory-be/internal/pkg/logger"
	"ai-comicstory-be/internal/repository/specification"
	"ai-comicstory-be/internal/repository/unitofwork"
	"ai-comicstory-be/pkg/events"

	"github.com/google/uuid"
)

const storyModule = "StoryService"

type IStoryService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStoryRequest) (*dto.CreateStoryResponse, error)
	Show(ctx context.Context, userId uuid.UUID, storyId string) (*dto.ShowStoryResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID) (*dto.ListStoriesResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, storyId string) (*dto.DeleteStoryResponse, error)
}

type storyService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewStoryService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IStoryService {
	return &storyService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

// NormalizeTheme maps a blank theme to the default and reports whether the result is known.
func NormalizeTheme(theme string) (string, bool) {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return entity.DefaultTheme, true
	}
	return theme, entity.IsValidTheme(theme)
}

func (s *storyService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStoryRequest) (*dto.CreateStoryResponse, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Notes) == "" {
		return nil, apperror.New(apperror.ErrValidation, "Title and notes are required")
	}
	theme, ok := NormalizeTheme(req.Theme)
	if !ok {
		return nil, apperror.New(apperror.ErrValidation, "Theme must be one of: "+strings.Join(entity.Themes, ", "))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	story := entity.Story{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     req.Title,
		Notes:     req.Notes,
		Theme:     theme,
		Panels:    []entity.Panel{},
		CreatedAt: time.Now(),
	}

	if err := uow.StoryRepository().Create(ctx, &story); err != nil {
		s.logger.Error(storyModule, "Failed to create story", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil, apperror.Wrap(apperror.ErrPersistence, "Failed to create story", err)
	}

	publishStoryEvent(ctx, s.publisherService, s.logger, events.StoryCreated, story.Id, userId, map[string]interface{}{
		"theme": story.Theme,
	})

	return &dto.CreateStoryResponse{
		Id: story.Id,
	}, nil
}

func (s *storyService) Show(ctx context.Context, userId uuid.UUID, storyId string) (*dto.ShowStoryResponse, error) {
	id, err := uuid.Parse(storyId)
	if err != nil {
		return nil, apperror.New(apperror.ErrNotFound, "Story not found")
	}

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

	return &dto.ShowStoryResponse{
		Story: toStoryResponse(story),
	}, nil
}

func (s *storyService) GetAll(ctx context.Context, userId uuid.UUID) (*dto.ListStoriesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stories, err := uow.StoryRepository().FindAll(ctx,
		specification.StoryOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrPersistence, "Failed to fetch stories", err)
	}

	result := make([]*dto.StoryResponse, 0, len(stories))
	for _, story := range stories {
		result = append(result, toStoryResponse(story))
	}

	return &dto.ListStoriesResponse{
		Stories: result,
	}, nil
}

// Delete succeeds whether or not a row matched.
func (s *storyService) Delete(ctx context.Context, userId uuid.UUID, storyId string) (*dto.DeleteStoryResponse, error) {
	id, err := uuid.Parse(storyId)
	if err != nil {
		return &dto.DeleteStoryResponse{Success: true}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.StoryRepository().DeleteOwned(ctx, id, userId)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrPersistence, "Failed to delete story", err)
	}

	if rows > 0 {
		publishStoryEvent(ctx, s.publisherService, s.logger, events.StoryDeleted, id, userId, nil)
	}

	return &dto.DeleteStoryResponse{Success: true}, nil
}

func toPanelResponses(panels []entity.Panel) []dto.PanelResponse {
	out := make([]dto.PanelResponse, len(panels))
	for i, p := range panels {
		out[i] = dto.PanelResponse{
			SceneDescription: p.SceneDescription,
			Text:             p.Text,
			ImageUrl:         p.ImageUrl,
		}
	}
	return out
}

func toStoryResponse(story *entity.Story) *dto.StoryResponse {
	return &dto.StoryResponse{
		Id:        story.Id,
		Title:     story.Title,
		Notes:     story.Notes,
		Theme:     story.Theme,
		Panels:    toPanelResponses(story.Panels),
		CreatedAt: story.CreatedAt,
	}
}
