package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinistock/backend/internal/domain/catalog"
	"github.com/clinistock/backend/internal/domain/shared"
)

// GormContraindicationRepository implements ContraindicationRepository using
// GORM
type GormContraindicationRepository struct {
	db *gorm.DB
}

// NewGormContraindicationRepository creates a new GormContraindicationRepository
func NewGormContraindicationRepository(db *gorm.DB) *GormContraindicationRepository {
	return &GormContraindicationRepository{db: db}
}

// FindByID finds a contraindication by its ID
func (r *GormContraindicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Contraindication, error) {
	var contraindication catalog.Contraindication
	if err := r.db.WithContext(ctx).First(&contraindication, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contraindication, nil
}

// FindByIDIncludingDeleted finds a contraindication by its ID regardless of
// deletion
func (r *GormContraindicationRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*catalog.Contraindication, error) {
	var contraindication catalog.Contraindication
	if err := r.db.WithContext(ctx).Unscoped().First(&contraindication, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contraindication, nil
}

// FindAll finds all contraindications matching the filter
func (r *GormContraindicationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Contraindication, error) {
	var contraindications []catalog.Contraindication
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.Contraindication{}), filter)
	if err := query.Find(&contraindications).Error; err != nil {
		return nil, err
	}
	return contraindications, nil
}

// Save creates or updates a contraindication
func (r *GormContraindicationRepository) Save(ctx context.Context, contraindication *catalog.Contraindication) error {
	return r.db.WithContext(ctx).Save(contraindication).Error
}

// Delete detaches the contraindication from referencing trade names and then
// soft-deletes it, in one transaction. Trade names survive with the reference
// cleared.
func (r *GormContraindicationRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var contraindication catalog.Contraindication
		if err := tx.Unscoped().First(&contraindication, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if contraindication.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}

		now := time.Now()
		if err := detach(tx, &catalog.TradeName{}, "contraindication_id", deletedBy, now, "contraindication_id = ?", id); err != nil {
			return err
		}
		return softDelete(tx, &catalog.Contraindication{}, deletedBy, now, "id = ?", id)
	})
}

// Ensure GormContraindicationRepository implements ContraindicationRepository
var _ catalog.ContraindicationRepository = (*GormContraindicationRepository)(nil)

// GormContainerMaterialRepository implements ContainerMaterialRepository using
// GORM
type GormContainerMaterialRepository struct {
	db *gorm.DB
}

// NewGormContainerMaterialRepository creates a new
// GormContainerMaterialRepository
func NewGormContainerMaterialRepository(db *gorm.DB) *GormContainerMaterialRepository {
	return &GormContainerMaterialRepository{db: db}
}

// FindByID finds a container material by its ID
func (r *GormContainerMaterialRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ContainerMaterial, error) {
	var material catalog.ContainerMaterial
	if err := r.db.WithContext(ctx).First(&material, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

// FindByIDIncludingDeleted finds a container material by its ID regardless of
// deletion
func (r *GormContainerMaterialRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*catalog.ContainerMaterial, error) {
	var material catalog.ContainerMaterial
	if err := r.db.WithContext(ctx).Unscoped().First(&material, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

// FindAll finds all container materials matching the filter
func (r *GormContainerMaterialRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ContainerMaterial, error) {
	var materials []catalog.ContainerMaterial
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.ContainerMaterial{}), filter)
	if err := query.Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// Save creates or updates a container material
func (r *GormContainerMaterialRepository) Save(ctx context.Context, material *catalog.ContainerMaterial) error {
	return r.db.WithContext(ctx).Save(material).Error
}

// Delete detaches the container material from referencing trade names and then
// soft-deletes it, in one transaction
func (r *GormContainerMaterialRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var material catalog.ContainerMaterial
		if err := tx.Unscoped().First(&material, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if material.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}

		now := time.Now()
		if err := detach(tx, &catalog.TradeName{}, "container_material_id", deletedBy, now, "container_material_id = ?", id); err != nil {
			return err
		}
		return softDelete(tx, &catalog.ContainerMaterial{}, deletedBy, now, "id = ?", id)
	})
}

// Ensure GormContainerMaterialRepository implements ContainerMaterialRepository
var _ catalog.ContainerMaterialRepository = (*GormContainerMaterialRepository)(nil)
