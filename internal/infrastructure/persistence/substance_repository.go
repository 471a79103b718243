package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinistock/backend/internal/domain/catalog"
	"github.com/clinistock/backend/internal/domain/inventory"
	"github.com/clinistock/backend/internal/domain/shared"
)

// GormSubstanceRepository implements SubstanceRepository using GORM
type GormSubstanceRepository struct {
	db *gorm.DB
}

// NewGormSubstanceRepository creates a new GormSubstanceRepository
func NewGormSubstanceRepository(db *gorm.DB) *GormSubstanceRepository {
	return &GormSubstanceRepository{db: db}
}

// FindByID finds a substance by its ID
func (r *GormSubstanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Substance, error) {
	var substance catalog.Substance
	if err := r.db.WithContext(ctx).First(&substance, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &substance, nil
}

// FindByIDIncludingDeleted finds a substance by its ID regardless of deletion
func (r *GormSubstanceRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*catalog.Substance, error) {
	var substance catalog.Substance
	if err := r.db.WithContext(ctx).Unscoped().First(&substance, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &substance, nil
}

// FindAll finds all substances matching the filter
func (r *GormSubstanceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Substance, error) {
	var substances []catalog.Substance
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.Substance{}), filter)
	if err := query.Find(&substances).Error; err != nil {
		return nil, err
	}
	return substances, nil
}

// Save creates or updates a substance
func (r *GormSubstanceRepository) Save(ctx context.Context, substance *catalog.Substance) error {
	return r.db.WithContext(ctx).Save(substance).Error
}

// Delete soft-deletes a substance and cascades to its category links, trade
// names and their batches in one transaction. Batches reference the substance
// only through trade names, hence the subquery.
func (r *GormSubstanceRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var substance catalog.Substance
		if err := tx.Unscoped().First(&substance, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if substance.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}

		now := time.Now()
		tradeNames := tx.Model(&catalog.TradeName{}).
			Select("id").
			Where("active_substance_id = ?", id)
		if err := softDelete(tx, &inventory.Batch{}, deletedBy, now, "trade_name_id IN (?)", tradeNames); err != nil {
			return err
		}
		if err := softDelete(tx, &catalog.TradeName{}, deletedBy, now, "active_substance_id = ?", id); err != nil {
			return err
		}
		if err := softDelete(tx, &catalog.SubstanceCategoryLink{}, deletedBy, now, "active_substance_id = ?", id); err != nil {
			return err
		}
		return softDelete(tx, &catalog.Substance{}, deletedBy, now, "id = ?", id)
	})
}

// Ensure GormSubstanceRepository implements SubstanceRepository
var _ catalog.SubstanceRepository = (*GormSubstanceRepository)(nil)

// GormSubstanceCategoryLinkRepository implements SubstanceCategoryLinkRepository
// using GORM
type GormSubstanceCategoryLinkRepository struct {
	db *gorm.DB
}

// NewGormSubstanceCategoryLinkRepository creates a new
// GormSubstanceCategoryLinkRepository
func NewGormSubstanceCategoryLinkRepository(db *gorm.DB) *GormSubstanceCategoryLinkRepository {
	return &GormSubstanceCategoryLinkRepository{db: db}
}

// FindByID finds a link by its ID
func (r *GormSubstanceCategoryLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.SubstanceCategoryLink, error) {
	var link catalog.SubstanceCategoryLink
	if err := r.db.WithContext(ctx).First(&link, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// FindBySubstance lists active links of a substance
func (r *GormSubstanceCategoryLinkRepository) FindBySubstance(ctx context.Context, substanceID uuid.UUID) ([]catalog.SubstanceCategoryLink, error) {
	var links []catalog.SubstanceCategoryLink
	if err := r.db.WithContext(ctx).
		Where("active_substance_id = ?", substanceID).
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// FindByCategory lists active links pointing at a category
func (r *GormSubstanceCategoryLinkRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.SubstanceCategoryLink, error) {
	var links []catalog.SubstanceCategoryLink
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// Save creates or updates a link
func (r *GormSubstanceCategoryLinkRepository) Save(ctx context.Context, link *catalog.SubstanceCategoryLink) error {
	return r.db.WithContext(ctx).Save(link).Error
}

// Delete soft-deletes a single link
func (r *GormSubstanceCategoryLinkRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var link catalog.SubstanceCategoryLink
		if err := tx.Unscoped().First(&link, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if link.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}
		return softDelete(tx, &catalog.SubstanceCategoryLink{}, deletedBy, time.Now(), "id = ?", id)
	})
}

// Ensure GormSubstanceCategoryLinkRepository implements
// SubstanceCategoryLinkRepository
var _ catalog.SubstanceCategoryLinkRepository = (*GormSubstanceCategoryLinkRepository)(nil)
