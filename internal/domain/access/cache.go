package access

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ScopeCache caches the resolved scope set of a user so authorization checks
// do not hit the database on every call. A nil, nil return means cache miss.
type ScopeCache interface {
	// Get retrieves the cached scope set of a user
	Get(ctx context.Context, userID uuid.UUID) (ScopeSet, error)

	// Set stores the scope set of a user with the given TTL
	Set(ctx context.Context, userID uuid.UUID, scopes ScopeSet, ttl time.Duration) error

	// Invalidate removes the cached scope set of a user. Must be called after
	// any grant or revoke affecting the user.
	Invalidate(ctx context.Context, userID uuid.UUID) error

	// Close releases any resources held by the cache
	Close() error
}
