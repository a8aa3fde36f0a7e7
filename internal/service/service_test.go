package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"ai-comicstory-be/internal/dto"
	"ai-comicstory-be/internal/model"
	"ai-comicstory-be/internal/repository/unitofwork"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Story{}))
	return db
}

func setupFactory(t *testing.T) (unitofwork.RepositoryFactory, *gorm.DB) {
	db := setupTestDB(t)
	return unitofwork.NewRepositoryFactory(db), db
}

// recordingPublisher captures published story events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []dto.StoryEventMessage
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	var evt dto.StoryEventMessage
	if err := json.Unmarshal(payload, &evt); err != nil {
		return err
	}
	p.mu.Lock()
	p.events = append(p.events, evt)
	p.mu.Unlock()
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}
