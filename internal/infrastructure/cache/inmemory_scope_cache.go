package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinistock/backend/internal/domain/access"
)

const (
	defaultCleanupInterval = 30 * time.Second
	defaultScopeTTL        = 5 * time.Minute
)

// InMemoryScopeCache implements ScopeCache using in-memory storage. Suitable
// for single-instance deployments or as L1 in front of Redis.
type InMemoryScopeCache struct {
	entries sync.Map // map[uuid.UUID]*scopeEntry
	logger  *zap.Logger
	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

type scopeEntry struct {
	scopes    access.ScopeSet
	expiresAt time.Time
}

func (e *scopeEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// InMemoryScopeCacheOption is a functional option for configuring the cache
type InMemoryScopeCacheOption func(*InMemoryScopeCache)

// WithInMemoryLogger sets the logger for the cache
func WithInMemoryLogger(logger *zap.Logger) InMemoryScopeCacheOption {
	return func(c *InMemoryScopeCache) {
		c.logger = logger
	}
}

// NewInMemoryScopeCache creates a new in-memory scope cache
func NewInMemoryScopeCache(opts ...InMemoryScopeCacheOption) *InMemoryScopeCache {
	cache := &InMemoryScopeCache{
		logger: zap.NewNop(),
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(cache)
	}

	go cache.cleanupExpired()

	return cache
}

// Get retrieves the cached scope set of a user
func (c *InMemoryScopeCache) Get(ctx context.Context, userID uuid.UUID) (access.ScopeSet, error) {
	if value, ok := c.entries.Load(userID); ok {
		entry := value.(*scopeEntry)
		if !entry.isExpired() {
			atomic.AddInt64(&c.hits, 1)
			c.logger.Debug("scope cache hit", zap.String("user_id", userID.String()))
			return entry.scopes, nil
		}
		c.entries.Delete(userID)
	}

	atomic.AddInt64(&c.misses, 1)
	c.logger.Debug("scope cache miss", zap.String("user_id", userID.String()))
	return nil, nil
}

// Set stores the scope set of a user with the given TTL
func (c *InMemoryScopeCache) Set(ctx context.Context, userID uuid.UUID, scopes access.ScopeSet, ttl time.Duration) error {
	if scopes == nil {
		scopes = access.ScopeSet{}
	}
	if ttl == 0 {
		ttl = defaultScopeTTL
	}

	c.entries.Store(userID, &scopeEntry{
		scopes:    scopes,
		expiresAt: time.Now().Add(ttl),
	})
	return nil
}

// Invalidate removes the cached scope set of a user
func (c *InMemoryScopeCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	c.entries.Delete(userID)
	c.logger.Debug("scope cache invalidated", zap.String("user_id", userID.String()))
	return nil
}

// Close releases any resources held by the cache
func (c *InMemoryScopeCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// GetStats returns cache statistics
func (c *InMemoryScopeCache) GetStats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// cleanupExpired periodically removes expired entries from the cache
func (c *InMemoryScopeCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.doCleanup()
		}
	}
}

func (c *InMemoryScopeCache) doCleanup() {
	var removed int
	c.entries.Range(func(key, value any) bool {
		if value.(*scopeEntry).isExpired() {
			c.entries.Delete(key)
			removed++
		}
		return true
	})
	if removed > 0 {
		c.logger.Debug("cleaned up expired scope cache entries", zap.Int("removed", removed))
	}
}

// Ensure InMemoryScopeCache implements ScopeCache
var _ access.ScopeCache = (*InMemoryScopeCache)(nil)
