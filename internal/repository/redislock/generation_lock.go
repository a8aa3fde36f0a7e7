package redislock

import (
	"context"
	"time"

	"ai-comicstory-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "comic:generate:"

// Deletes the key only while it still carries the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type GenerationLock struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewGenerationLock shares the guard across every API instance pointed at the same Redis.
func NewGenerationLock(rdb *redis.Client, ttl time.Duration) contract.GenerationLock {
	return &GenerationLock{
		rdb: rdb,
		ttl: ttl,
	}
}

func (l *GenerationLock) Acquire(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, keyPrefix+key, token, l.ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

func (l *GenerationLock) Release(ctx context.Context, key, token string) {
	releaseScript.Run(ctx, l.rdb, []string{keyPrefix + key}, token)
}
