package contract

import "context"

// GenerationLock is a per-key mutual exclusion used around comic generation.
type GenerationLock interface {
	// Acquire returns ok=false without error when the key is already held.
	// The token identifies this holder and must be passed to Release.
	Acquire(ctx context.Context, key string) (token string, ok bool, err error)
	// Release frees the key only if it is still held under token.
	Release(ctx context.Context, key, token string)
}
