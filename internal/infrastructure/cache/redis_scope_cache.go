package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/clinistock/backend/internal/domain/access"
	"github.com/clinistock/backend/internal/infrastructure/config"
)

// RedisScopeCache implements ScopeCache using Redis. Suitable for distributed
// deployments where multiple instances share authorization state.
type RedisScopeCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisScopeCache creates a new Redis-based scope cache
func NewRedisScopeCache(cfg *config.RedisConfig) (*RedisScopeCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisScopeCache{
		client:    client,
		keyPrefix: "access:scopes:",
	}, nil
}

// NewRedisScopeCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisScopeCacheWithClient(client *redis.Client, keyPrefix string) *RedisScopeCache {
	if keyPrefix == "" {
		keyPrefix = "access:scopes:"
	}
	return &RedisScopeCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (c *RedisScopeCache) key(userID uuid.UUID) string {
	return c.keyPrefix + userID.String()
}

// Get retrieves the cached scope set of a user
func (c *RedisScopeCache) Get(ctx context.Context, userID uuid.UUID) (access.ScopeSet, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached scopes: %w", err)
	}

	var scopes access.ScopeSet
	if err := json.Unmarshal(data, &scopes); err != nil {
		return nil, fmt.Errorf("failed to decode cached scopes: %w", err)
	}
	return scopes, nil
}

// Set stores the scope set of a user with the given TTL
func (c *RedisScopeCache) Set(ctx context.Context, userID uuid.UUID, scopes access.ScopeSet, ttl time.Duration) error {
	if scopes == nil {
		scopes = access.ScopeSet{}
	}
	if ttl == 0 {
		ttl = defaultScopeTTL
	}

	data, err := json.Marshal(scopes)
	if err != nil {
		return fmt.Errorf("failed to encode scopes: %w", err)
	}

	if err := c.client.Set(ctx, c.key(userID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache scopes: %w", err)
	}
	return nil
}

// Invalidate removes the cached scope set of a user
func (c *RedisScopeCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached scopes: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisScopeCache) Close() error {
	return c.client.Close()
}

// GetClient returns the underlying Redis client
func (c *RedisScopeCache) GetClient() *redis.Client {
	return c.client
}

// Ensure RedisScopeCache implements ScopeCache
var _ access.ScopeCache = (*RedisScopeCache)(nil)
