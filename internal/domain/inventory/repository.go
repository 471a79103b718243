package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/shared"
)

// BatchRepository defines the interface for batch persistence
type BatchRepository interface {
	// FindByID finds a batch by its ID, excluding deleted batches
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)

	// FindByIDIncludingDeleted finds a batch by its ID regardless of deletion
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*Batch, error)

	// FindByWard lists active batches stored at a ward
	FindByWard(ctx context.Context, wardID uuid.UUID) ([]Batch, error)

	// FindByTradeName lists active batches of a trade name
	FindByTradeName(ctx context.Context, tradeNameID uuid.UUID) ([]Batch, error)

	// FindAll finds all batches matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Batch, error)

	// Save creates or updates a batch
	Save(ctx context.Context, batch *Batch) error

	// Delete soft-deletes a single batch
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}
