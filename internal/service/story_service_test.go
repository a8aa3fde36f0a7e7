package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-comicstory-be/internal/dto"
	"ai-comicstory-be/internal/model"
	"ai-comicstory-be/internal/pkg/apperror"
	"ai-comicstory-be/internal/pkg/logger"
	"ai-comicstory-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateStoryRequest
		wantTheme string
		wantErr   error
	}{
		{name: "explicit theme", req: dto.CreateStoryRequest{Title: "Robot Cat", Notes: "secret robot", Theme: "modern"}, wantTheme: "modern"},
		{name: "omitted theme defaults", req: dto.CreateStoryRequest{Title: "Robot Cat", Notes: "secret robot"}, wantTheme: "classic"},
		{name: "blank theme defaults", req: dto.CreateStoryRequest{Title: "Robot Cat", Notes: "secret robot", Theme: "  "}, wantTheme: "classic"},
		{name: "unknown theme", req: dto.CreateStoryRequest{Title: "Robot Cat", Notes: "secret robot", Theme: "noir"}, wantErr: apperror.ErrValidation},
		{name: "missing title", req: dto.CreateStoryRequest{Notes: "secret robot"}, wantErr: apperror.ErrValidation},
		{name: "whitespace notes", req: dto.CreateStoryRequest{Title: "Robot Cat", Notes: " \n\t"}, wantErr: apperror.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, db := setupFactory(t)
			pub := &recordingPublisher{}
			svc := NewStoryService(factory, pub, logger.NewNopLogger())
			userId := uuid.New()

			res, err := svc.Create(context.Background(), userId, &tt.req)

			var count int64
			require.NoError(t, db.Model(&model.Story{}).Count(&count).Error)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				assert.Equal(t, int64(0), count, "no row on validation failure")
				assert.Empty(t, pub.types())
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, res.Id)
			assert.Equal(t, int64(1), count)

			shown, err := svc.Show(context.Background(), userId, res.Id.String())
			require.NoError(t, err)
			assert.Equal(t, tt.wantTheme, shown.Story.Theme)
			assert.Equal(t, tt.req.Title, shown.Story.Title)
			assert.NotNil(t, shown.Story.Panels)
			assert.Empty(t, shown.Story.Panels)

			assert.Equal(t, []string{events.StoryCreated}, pub.types())
		})
	}
}

func TestStoryService_PublishFailureIsNotSurfaced(t *testing.T) {
	factory, _ := setupFactory(t)
	svc := NewStoryService(factory, &recordingPublisher{err: errors.New("bus down")}, logger.NewNopLogger())

	res, err := svc.Create(context.Background(), uuid.New(), &dto.CreateStoryRequest{Title: "t", Notes: "n"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.Id)
}

func TestStoryService_ShowScopedToOwner(t *testing.T) {
	factory, _ := setupFactory(t)
	svc := NewStoryService(factory, nil, logger.NewNopLogger())
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, &dto.CreateStoryRequest{Title: "t", Notes: "n"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		userId  uuid.UUID
		storyId string
		wantErr error
	}{
		{name: "owner", userId: owner, storyId: created.Id.String()},
		{name: "other user", userId: uuid.New(), storyId: created.Id.String(), wantErr: apperror.ErrNotFound},
		{name: "unknown id", userId: owner, storyId: uuid.NewString(), wantErr: apperror.ErrNotFound},
		{name: "malformed id", userId: owner, storyId: "not-a-uuid", wantErr: apperror.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Show(ctx, tt.userId, tt.storyId)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, created.Id, res.Story.Id)
		})
	}
}

func TestStoryService_GetAll(t *testing.T) {
	factory, db := setupFactory(t)
	svc := NewStoryService(factory, nil, logger.NewNopLogger())
	ctx := context.Background()
	userId := uuid.New()

	t.Run("empty list is not nil", func(t *testing.T) {
		res, err := svc.GetAll(ctx, userId)
		require.NoError(t, err)
		assert.NotNil(t, res.Stories)
		assert.Len(t, res.Stories, 0)
	})

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"old", "mid", "new"} {
		require.NoError(t, db.Create(&model.Story{
			UserId:    userId,
			Title:     title,
			Notes:     "n",
			Theme:     "classic",
			Panels:    []model.Panel{},
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}
	_, err := svc.Create(ctx, uuid.New(), &dto.CreateStoryRequest{Title: "someone else", Notes: "n"})
	require.NoError(t, err)

	t.Run("owner only, newest first", func(t *testing.T) {
		res, err := svc.GetAll(ctx, userId)
		require.NoError(t, err)
		require.Len(t, res.Stories, 3)
		assert.Equal(t, "new", res.Stories[0].Title)
		assert.Equal(t, "mid", res.Stories[1].Title)
		assert.Equal(t, "old", res.Stories[2].Title)
	})
}

func TestStoryService_Delete(t *testing.T) {
	factory, _ := setupFactory(t)
	pub := &recordingPublisher{}
	svc := NewStoryService(factory, pub, logger.NewNopLogger())
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, &dto.CreateStoryRequest{Title: "t", Notes: "n"})
	require.NoError(t, err)

	t.Run("foreign user cannot delete", func(t *testing.T) {
		res, err := svc.Delete(ctx, uuid.New(), created.Id.String())
		require.NoError(t, err)
		assert.True(t, res.Success)

		_, err = svc.Show(ctx, owner, created.Id.String())
		assert.NoError(t, err, "row must survive")
	})

	t.Run("malformed id succeeds", func(t *testing.T) {
		res, err := svc.Delete(ctx, owner, "%%%")
		require.NoError(t, err)
		assert.True(t, res.Success)
	})

	t.Run("owner deletes", func(t *testing.T) {
		res, err := svc.Delete(ctx, owner, created.Id.String())
		require.NoError(t, err)
		assert.True(t, res.Success)

		_, err = svc.Show(ctx, owner, created.Id.String())
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("second delete still succeeds", func(t *testing.T) {
		res, err := svc.Delete(ctx, owner, created.Id.String())
		require.NoError(t, err)
		assert.True(t, res.Success)
	})

	assert.Equal(t, []string{events.StoryCreated, events.StoryDeleted}, pub.types())
}
