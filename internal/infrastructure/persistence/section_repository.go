package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinistock/backend/internal/domain/access"
	"github.com/clinistock/backend/internal/domain/inventory"
	"github.com/clinistock/backend/internal/domain/org"
	"github.com/clinistock/backend/internal/domain/shared"
)

// GormSectionRepository implements SectionRepository using GORM
type GormSectionRepository struct {
	db *gorm.DB
}

// NewGormSectionRepository creates a new GormSectionRepository
func NewGormSectionRepository(db *gorm.DB) *GormSectionRepository {
	return &GormSectionRepository{db: db}
}

// FindByID finds a section by its ID
func (r *GormSectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*org.Section, error) {
	var section org.Section
	if err := r.db.WithContext(ctx).First(&section, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &section, nil
}

// FindByIDIncludingDeleted finds a section by its ID regardless of deletion
func (r *GormSectionRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*org.Section, error) {
	var section org.Section
	if err := r.db.WithContext(ctx).Unscoped().First(&section, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &section, nil
}

// FindByLocation lists active sections of a location
func (r *GormSectionRepository) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]org.Section, error) {
	var sections []org.Section
	if err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("name ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// FindAll finds all sections matching the filter
func (r *GormSectionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]org.Section, error) {
	var sections []org.Section
	query := applyFilter(r.db.WithContext(ctx).Model(&org.Section{}), filter)
	if err := query.Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// Save creates or updates a section
func (r *GormSectionRepository) Save(ctx context.Context, section *org.Section) error {
	return r.db.WithContext(ctx).Save(section).Error
}

// Delete soft-deletes a section and cascades to its wards, batches and access
// scopes in one transaction
func (r *GormSectionRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var section org.Section
		if err := tx.Unscoped().First(&section, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if section.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}

		now := time.Now()
		if err := softDelete(tx, &inventory.Batch{}, deletedBy, now, "section_id = ?", id); err != nil {
			return err
		}
		if err := softDelete(tx, &access.Scope{}, deletedBy, now, "section_id = ?", id); err != nil {
			return err
		}
		if err := softDelete(tx, &org.Ward{}, deletedBy, now, "section_id = ?", id); err != nil {
			return err
		}
		return softDelete(tx, &org.Section{}, deletedBy, now, "id = ?", id)
	})
}

// Ensure GormSectionRepository implements SectionRepository
var _ org.SectionRepository = (*GormSectionRepository)(nil)
