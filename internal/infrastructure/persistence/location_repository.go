package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinistock/backend/internal/domain/access"
	"github.com/clinistock/backend/internal/domain/inventory"
	"github.com/clinistock/backend/internal/domain/org"
	"github.com/clinistock/backend/internal/domain/shared"
)

// GormLocationRepository implements LocationRepository using GORM
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GormLocationRepository
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// FindByID finds a location by its ID
func (r *GormLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*org.Location, error) {
	var location org.Location
	if err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &location, nil
}

// FindByIDIncludingDeleted finds a location by its ID regardless of deletion
func (r *GormLocationRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*org.Location, error) {
	var location org.Location
	if err := r.db.WithContext(ctx).Unscoped().First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &location, nil
}

// FindByCode finds a location by its unique code
func (r *GormLocationRepository) FindByCode(ctx context.Context, code string) (*org.Location, error) {
	var location org.Location
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&location).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &location, nil
}

// ExistsByCode checks if a location with the given code exists
func (r *GormLocationRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&org.Location{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all locations matching the filter
func (r *GormLocationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]org.Location, error) {
	var locations []org.Location
	query := applyFilter(r.db.WithContext(ctx).Model(&org.Location{}), filter)
	if err := query.Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// Save creates or updates a location
func (r *GormLocationRepository) Save(ctx context.Context, location *org.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

// Delete soft-deletes a location and cascades to its sections, wards, batches
// and access scopes. The cascade commits as a single atomic unit, so a reader
// never observes a ward whose owning section is already gone.
func (r *GormLocationRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var location org.Location
		if err := tx.Unscoped().First(&location, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if location.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}

		now := time.Now()
		if err := softDelete(tx, &inventory.Batch{}, deletedBy, now, "location_id = ?", id); err != nil {
			return err
		}
		if err := softDelete(tx, &access.Scope{}, deletedBy, now, "location_id = ?", id); err != nil {
			return err
		}
		if err := softDelete(tx, &org.Ward{}, deletedBy, now, "location_id = ?", id); err != nil {
			return err
		}
		if err := softDelete(tx, &org.Section{}, deletedBy, now, "location_id = ?", id); err != nil {
			return err
		}
		return softDelete(tx, &org.Location{}, deletedBy, now, "id = ?", id)
	})
}

// Ensure GormLocationRepository implements LocationRepository
var _ org.LocationRepository = (*GormLocationRepository)(nil)
