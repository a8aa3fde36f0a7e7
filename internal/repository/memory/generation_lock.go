package memory

import (
	"context"
	"sync"
	"time"

	"ai-comicstory-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type GenerationLock struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// NewGenerationLock keeps held keys for at most ttl so a crashed generation cannot pin a story forever.
func NewGenerationLock(ttl time.Duration) contract.GenerationLock {
	return &GenerationLock{
		cache: cache.New(ttl, ttl),
	}
}

func (l *GenerationLock) Acquire(ctx context.Context, key string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	token := uuid.NewString()
	// Add fails when the key already exists and has not expired
	if err := l.cache.Add(key, token, cache.DefaultExpiration); err != nil {
		return "", false, nil
	}
	return token, true, nil
}

func (l *GenerationLock) Release(ctx context.Context, key, token string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if held, found := l.cache.Get(key); found && held == token {
		l.cache.Delete(key)
	}
}
