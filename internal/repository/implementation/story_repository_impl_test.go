package implementation

import (
	"context"
	"testing"
	"time"

	"ai-comicstory-be/internal/entity"
	"ai-comicstory-be/internal/model"
	"ai-comicstory-be/internal/repository/specification"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Story{}))
	return db
}

func strPtr(s string) *string { return &s }

func TestStoryRepository_CreateAndFindOne(t *testing.T) {
	repo := NewStoryRepository(setupStoryDB(t))
	ctx := context.Background()
	userId := uuid.New()

	story := &entity.Story{
		Id:     uuid.New(),
		UserId: userId,
		Title:  "Robot Cat",
		Notes:  "A cat who is secretly a robot",
		Theme:  entity.ThemeModern,
	}
	require.NoError(t, repo.Create(ctx, story))
	assert.False(t, story.CreatedAt.IsZero())

	found, err := repo.FindOne(ctx,
		specification.ByID{ID: story.Id},
		specification.StoryOwnedBy{UserID: userId},
	)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Robot Cat", found.Title)
	assert.Equal(t, entity.ThemeModern, found.Theme)
	assert.NotNil(t, found.Panels)
	assert.Empty(t, found.Panels)

	t.Run("other owner sees nothing", func(t *testing.T) {
		other, err := repo.FindOne(ctx,
			specification.ByID{ID: story.Id},
			specification.StoryOwnedBy{UserID: uuid.New()},
		)
		assert.NoError(t, err)
		assert.Nil(t, other)
	})
}

func TestStoryRepository_FindAllNewestFirst(t *testing.T) {
	db := setupStoryDB(t)
	repo := NewStoryRepository(db)
	ctx := context.Background()
	userId := uuid.New()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		require.NoError(t, db.Create(&model.Story{
			UserId:    userId,
			Title:     title,
			Notes:     "notes",
			Theme:     entity.ThemeClassic,
			Panels:    []model.Panel{},
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}).Error)
	}
	require.NoError(t, repo.Create(ctx, &entity.Story{UserId: uuid.New(), Title: "foreign", Notes: "n", Theme: entity.ThemeClassic}))

	stories, err := repo.FindAll(ctx,
		specification.StoryOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	require.NoError(t, err)
	require.Len(t, stories, 3)
	assert.Equal(t, "third", stories[0].Title)
	assert.Equal(t, "second", stories[1].Title)
	assert.Equal(t, "first", stories[2].Title)
}

func TestStoryRepository_UpdatePanels(t *testing.T) {
	repo := NewStoryRepository(setupStoryDB(t))
	ctx := context.Background()
	userId := uuid.New()

	story := &entity.Story{UserId: userId, Title: "t", Notes: "n", Theme: entity.ThemeVintage}
	require.NoError(t, repo.Create(ctx, story))

	panels := []entity.Panel{
		{SceneDescription: "A dark alley", Text: "Who's there?", ImageUrl: strPtr("https://img/1.png")},
		{SceneDescription: "A flash of light", Text: "BOOM!", ImageUrl: nil},
	}

	tests := []struct {
		name     string
		id       uuid.UUID
		userId   uuid.UUID
		wantRows int64
	}{
		{name: "owner", id: story.Id, userId: userId, wantRows: 1},
		{name: "foreign user", id: story.Id, userId: uuid.New(), wantRows: 0},
		{name: "missing story", id: uuid.New(), userId: userId, wantRows: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := repo.UpdatePanels(ctx, tt.id, tt.userId, panels)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantRows, rows)
		})
	}

	found, err := repo.FindOne(ctx, specification.ByID{ID: story.Id})
	require.NoError(t, err)
	require.Len(t, found.Panels, 2)
	assert.Equal(t, "A dark alley", found.Panels[0].SceneDescription)
	require.NotNil(t, found.Panels[0].ImageUrl)
	assert.Equal(t, "https://img/1.png", *found.Panels[0].ImageUrl)
	assert.Nil(t, found.Panels[1].ImageUrl)
}

func TestStoryRepository_DeleteOwned(t *testing.T) {
	repo := NewStoryRepository(setupStoryDB(t))
	ctx := context.Background()
	userId := uuid.New()

	story := &entity.Story{UserId: userId, Title: "t", Notes: "n", Theme: entity.ThemeClassic}
	require.NoError(t, repo.Create(ctx, story))

	rows, err := repo.DeleteOwned(ctx, story.Id, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	rows, err = repo.DeleteOwned(ctx, story.Id, userId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.DeleteOwned(ctx, story.Id, userId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}
