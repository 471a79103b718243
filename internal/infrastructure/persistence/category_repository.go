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

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindByIDIncludingDeleted finds a category by its ID regardless of deletion
func (r *GormCategoryRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).Unscoped().First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll finds all categories matching the filter
func (r *GormCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	var categories []catalog.Category
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.Category{}), filter)
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Save creates or updates a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete soft-deletes a category and cascades to its subcategories and
// substance links in one transaction
func (r *GormCategoryRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category catalog.Category
		if err := tx.Unscoped().First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if category.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}

		now := time.Now()
		if err := softDelete(tx, &catalog.SubstanceCategoryLink{}, deletedBy, now, "category_id = ?", id); err != nil {
			return err
		}
		if err := softDelete(tx, &catalog.Subcategory{}, deletedBy, now, "parent_id = ?", id); err != nil {
			return err
		}
		return softDelete(tx, &catalog.Category{}, deletedBy, now, "id = ?", id)
	})
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)

// GormSubcategoryRepository implements SubcategoryRepository using GORM
type GormSubcategoryRepository struct {
	db *gorm.DB
}

// NewGormSubcategoryRepository creates a new GormSubcategoryRepository
func NewGormSubcategoryRepository(db *gorm.DB) *GormSubcategoryRepository {
	return &GormSubcategoryRepository{db: db}
}

// FindByID finds a subcategory by its ID
func (r *GormSubcategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Subcategory, error) {
	var subcategory catalog.Subcategory
	if err := r.db.WithContext(ctx).First(&subcategory, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &subcategory, nil
}

// FindByIDIncludingDeleted finds a subcategory by its ID regardless of deletion
func (r *GormSubcategoryRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*catalog.Subcategory, error) {
	var subcategory catalog.Subcategory
	if err := r.db.WithContext(ctx).Unscoped().First(&subcategory, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &subcategory, nil
}

// FindByCategory lists active subcategories of a category
func (r *GormSubcategoryRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Subcategory, error) {
	var subcategories []catalog.Subcategory
	if err := r.db.WithContext(ctx).
		Where("parent_id = ?", categoryID).
		Order("name ASC").
		Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}

// Save creates or updates a subcategory
func (r *GormSubcategoryRepository) Save(ctx context.Context, subcategory *catalog.Subcategory) error {
	return r.db.WithContext(ctx).Save(subcategory).Error
}

// Delete soft-deletes a subcategory and detaches it from substance links in
// one transaction. Links survive at category granularity.
func (r *GormSubcategoryRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var subcategory catalog.Subcategory
		if err := tx.Unscoped().First(&subcategory, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if subcategory.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}

		now := time.Now()
		if err := detach(tx, &catalog.SubstanceCategoryLink{}, "subcategory_id", deletedBy, now, "subcategory_id = ?", id); err != nil {
			return err
		}
		return softDelete(tx, &catalog.Subcategory{}, deletedBy, now, "id = ?", id)
	})
}

// Ensure GormSubcategoryRepository implements SubcategoryRepository
var _ catalog.SubcategoryRepository = (*GormSubcategoryRepository)(nil)
