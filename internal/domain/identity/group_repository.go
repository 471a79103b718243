package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/shared"
)

// GroupRepository defines the interface for group persistence
type GroupRepository interface {
	// FindByID finds a group by its ID, excluding deleted groups
	FindByID(ctx context.Context, id uuid.UUID) (*Group, error)

	// FindByIDIncludingDeleted finds a group by its ID regardless of deletion
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*Group, error)

	// FindAll finds all groups matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Group, error)

	// Save creates or updates a group
	Save(ctx context.Context, group *Group) error

	// Delete soft-deletes a group and cascades to its memberships
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// UserGroupRepository defines the interface for group membership persistence
type UserGroupRepository interface {
	// FindByGroup lists active memberships of a group
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]UserGroup, error)

	// FindByUser lists active memberships of a user
	FindByUser(ctx context.Context, userID uuid.UUID) ([]UserGroup, error)

	// Save creates or updates a membership
	Save(ctx context.Context, membership *UserGroup) error

	// Delete soft-deletes a single membership
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}
