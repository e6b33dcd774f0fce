package usecase

import (
	"context"
	"time"
)

// SearchCache fronts match discovery results. Implementations may be
// unavailable; callers treat a miss and an unavailable cache the same way.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
