package org

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/shared"
)

// LocationRepository defines the interface for location persistence
type LocationRepository interface {
	// FindByID finds a location by its ID, excluding deleted locations
	FindByID(ctx context.Context, id uuid.UUID) (*Location, error)

	// FindByIDIncludingDeleted finds a location by its ID regardless of deletion
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*Location, error)

	// FindByCode finds a location by its unique code
	FindByCode(ctx context.Context, code string) (*Location, error)

	// ExistsByCode checks if a location with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// FindAll finds all locations matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Location, error)

	// Save creates or updates a location
	Save(ctx context.Context, location *Location) error

	// Delete soft-deletes a location and cascades to its sections, wards,
	// batches and access scopes in one transaction
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// SectionRepository defines the interface for section persistence
type SectionRepository interface {
	// FindByID finds a section by its ID, excluding deleted sections
	FindByID(ctx context.Context, id uuid.UUID) (*Section, error)

	// FindByIDIncludingDeleted finds a section by its ID regardless of deletion
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*Section, error)

	// FindByLocation lists active sections of a location
	FindByLocation(ctx context.Context, locationID uuid.UUID) ([]Section, error)

	// FindAll finds all sections matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Section, error)

	// Save creates or updates a section
	Save(ctx context.Context, section *Section) error

	// Delete soft-deletes a section and cascades to its wards, batches and
	// access scopes in one transaction
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// WardRepository defines the interface for ward persistence
type WardRepository interface {
	// FindByID finds a ward by its ID, excluding deleted wards
	FindByID(ctx context.Context, id uuid.UUID) (*Ward, error)

	// FindByIDIncludingDeleted finds a ward by its ID regardless of deletion
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*Ward, error)

	// FindBySection lists active wards of a section
	FindBySection(ctx context.Context, sectionID uuid.UUID) ([]Ward, error)

	// FindAll finds all wards matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Ward, error)

	// Save creates or updates a ward
	Save(ctx context.Context, ward *Ward) error

	// Delete soft-deletes a ward and cascades to its batches and access
	// scopes in one transaction
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}
