package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinistock/backend/internal/domain/access"
	"github.com/clinistock/backend/internal/domain/org"
)

func testScopeSet(t *testing.T, userID uuid.UUID) access.ScopeSet {
	t.Helper()

	actor := uuid.Must(uuid.NewV7())
	location, err := org.NewLocation(actor, "Klinikum Munich", "MUC-01")
	require.NoError(t, err)
	scope, err := access.NewScope(actor, userID, location, nil, nil)
	require.NoError(t, err)
	return access.ScopeSet{*scope}
}

func TestInMemoryScopeCache_Get(t *testing.T) {
	cache := NewInMemoryScopeCache()
	defer cache.Close()

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	// Cache miss
	scopes, err := cache.Get(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, scopes)

	// Set and hit
	set := testScopeSet(t, userID)
	require.NoError(t, cache.Set(ctx, userID, set, 5*time.Second))

	scopes, err = cache.Get(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, scopes)
	assert.Len(t, scopes, 1)
	assert.Equal(t, userID, scopes[0].UserID)
}

func TestInMemoryScopeCache_EmptySetIsCached(t *testing.T) {
	cache := NewInMemoryScopeCache()
	defer cache.Close()

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	// A user with no grants still gets a cached entry, distinct from a miss
	require.NoError(t, cache.Set(ctx, userID, nil, 5*time.Second))

	scopes, err := cache.Get(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, scopes)
	assert.Empty(t, scopes)
}

func TestInMemoryScopeCache_Invalidate(t *testing.T) {
	cache := NewInMemoryScopeCache()
	defer cache.Close()

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	require.NoError(t, cache.Set(ctx, userID, testScopeSet(t, userID), 5*time.Second))
	require.NoError(t, cache.Invalidate(ctx, userID))

	scopes, err := cache.Get(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, scopes)
}

func TestInMemoryScopeCache_Expiration(t *testing.T) {
	cache := NewInMemoryScopeCache()
	defer cache.Close()

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	require.NoError(t, cache.Set(ctx, userID, testScopeSet(t, userID), 50*time.Millisecond))

	scopes, err := cache.Get(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, scopes)

	time.Sleep(100 * time.Millisecond)

	scopes, err = cache.Get(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, scopes)
}

func TestInMemoryScopeCache_Stats(t *testing.T) {
	cache := NewInMemoryScopeCache()
	defer cache.Close()

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	hits, misses := cache.GetStats()
	assert.Equal(t, int64(0), hits)
	assert.Equal(t, int64(0), misses)

	_, _ = cache.Get(ctx, userID)
	hits, misses = cache.GetStats()
	assert.Equal(t, int64(0), hits)
	assert.Equal(t, int64(1), misses)

	require.NoError(t, cache.Set(ctx, userID, testScopeSet(t, userID), 5*time.Second))

	_, _ = cache.Get(ctx, userID)
	hits, misses = cache.GetStats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestInMemoryScopeCache_Close(t *testing.T) {
	cache := NewInMemoryScopeCache()

	require.NoError(t, cache.Close())

	// Close again should be safe (idempotent)
	require.NoError(t, cache.Close())
}
