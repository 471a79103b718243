package access

import (
	"context"

	"github.com/google/uuid"
)

// ScopeRepository defines the interface for access scope persistence
type ScopeRepository interface {
	// FindByID finds a scope by its ID, excluding deleted scopes
	FindByID(ctx context.Context, id uuid.UUID) (*Scope, error)

	// FindByIDIncludingDeleted finds a scope by its ID regardless of deletion
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*Scope, error)

	// FindByUser lists the active scope records of a user
	FindByUser(ctx context.Context, userID uuid.UUID) (ScopeSet, error)

	// Save creates or updates a scope
	Save(ctx context.Context, scope *Scope) error

	// Delete soft-deletes a single scope record
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}
