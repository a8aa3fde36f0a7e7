package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-comicstory-be/internal/entity"
	"ai-comicstory-be/internal/model"
	"ai-comicstory-be/internal/repository/specification"
	"ai-comicstory-be/internal/repository/unitofwork"
	"ai-comicstory-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	require.NoError(t, gormDB.AutoMigrate(&model.Story{}))

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())
	assert.NotNil(t, uow.StoryRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	userId := uuid.New()
	story := &entity.Story{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     "Integration Story",
		Notes:     "Stored through postgres jsonb",
		Theme:     entity.ThemeModern,
		Panels:    []entity.Panel{},
		CreatedAt: time.Now(),
	}
	ctx := context.Background()
	t.Cleanup(func() {
		_, _ = uow.StoryRepository().DeleteOwned(ctx, story.Id, userId)
	})

	t.Run("Create and read back", func(t *testing.T) {
		require.NoError(t, uow.StoryRepository().Create(ctx, story))

		found, err := uow.StoryRepository().FindOne(ctx,
			specification.ByID{ID: story.Id},
			specification.StoryOwnedBy{UserID: userId},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Integration Story", found.Title)
		assert.Empty(t, found.Panels)
	})

	t.Run("Panels round trip through jsonb", func(t *testing.T) {
		url := "https://img.example/1.png"
		panels := []entity.Panel{
			{SceneDescription: "Opening shot", Text: "It begins.", ImageUrl: &url},
			{SceneDescription: "Closing shot", Text: "It ends."},
		}

		rows, err := uow.StoryRepository().UpdatePanels(ctx, story.Id, userId, panels)
		require.NoError(t, err)
		assert.EqualValues(t, 1, rows)

		found, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: story.Id})
		require.NoError(t, err)
		require.Len(t, found.Panels, 2)
		require.NotNil(t, found.Panels[0].ImageUrl)
		assert.Equal(t, url, *found.Panels[0].ImageUrl)
		assert.Nil(t, found.Panels[1].ImageUrl)
	})

	t.Run("Other users cannot update", func(t *testing.T) {
		rows, err := uow.StoryRepository().UpdatePanels(ctx, story.Id, uuid.New(), nil)
		require.NoError(t, err)
		assert.EqualValues(t, 0, rows)
	})
}
