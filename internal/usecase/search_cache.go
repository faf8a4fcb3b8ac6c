package usecase

import (
	"context"
	"time"
)

// SearchCache is the caching port the search usecases depend on. The redis
// implementation degrades to a no-op when the server is unreachable, so a
// nil-safe caller never needs to special-case cache outages.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	DeleteByPattern(ctx context.Context, pattern string) error
}
