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

// GormWardRepository implements WardRepository using GORM
type GormWardRepository struct {
	db *gorm.DB
}

// NewGormWardRepository creates a new GormWardRepository
func NewGormWardRepository(db *gorm.DB) *GormWardRepository {
	return &GormWardRepository{db: db}
}

// FindByID finds a ward by its ID
func (r *GormWardRepository) FindByID(ctx context.Context, id uuid.UUID) (*org.Ward, error) {
	var ward org.Ward
	if err := r.db.WithContext(ctx).First(&ward, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ward, nil
}

// FindByIDIncludingDeleted finds a ward by its ID regardless of deletion
func (r *GormWardRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*org.Ward, error) {
	var ward org.Ward
	if err := r.db.WithContext(ctx).Unscoped().First(&ward, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ward, nil
}

// FindBySection lists active wards of a section
func (r *GormWardRepository) FindBySection(ctx context.Context, sectionID uuid.UUID) ([]org.Ward, error) {
	var wards []org.Ward
	if err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("name ASC").
		Find(&wards).Error; err != nil {
		return nil, err
	}
	return wards, nil
}

// FindAll finds all wards matching the filter
func (r *GormWardRepository) FindAll(ctx context.Context, filter shared.Filter) ([]org.Ward, error) {
	var wards []org.Ward
	query := applyFilter(r.db.WithContext(ctx).Model(&org.Ward{}), filter)
	if err := query.Find(&wards).Error; err != nil {
		return nil, err
	}
	return wards, nil
}

// Save creates or updates a ward
func (r *GormWardRepository) Save(ctx context.Context, ward *org.Ward) error {
	return r.db.WithContext(ctx).Save(ward).Error
}

// Delete soft-deletes a ward and cascades to its batches and access scopes in
// one transaction. Scope rows narrowed to the ward are removed, not widened to
// the parent location.
func (r *GormWardRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ward org.Ward
		if err := tx.Unscoped().First(&ward, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if ward.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}

		now := time.Now()
		if err := softDelete(tx, &inventory.Batch{}, deletedBy, now, "ward_id = ?", id); err != nil {
			return err
		}
		if err := softDelete(tx, &access.Scope{}, deletedBy, now, "ward_id = ?", id); err != nil {
			return err
		}
		return softDelete(tx, &org.Ward{}, deletedBy, now, "id = ?", id)
	})
}

// Ensure GormWardRepository implements WardRepository
var _ org.WardRepository = (*GormWardRepository)(nil)
