package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinistock/backend/internal/domain/catalog"
)

// CategoryService handles maintenance of categories and subcategories
type CategoryService struct {
	categoryRepo    catalog.CategoryRepository
	subcategoryRepo catalog.SubcategoryRepository
	logger          *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	subcategoryRepo catalog.SubcategoryRepository,
	logger *zap.Logger,
) *CategoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryService{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		logger:          logger,
	}
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Actor, req.Name, req.Type)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category created",
		zap.String("category_id", category.ID.String()),
		zap.String("type", string(category.Type)))
	return ToCategoryResponse(category), nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// ListCategories lists categories matching the filter
func (s *CategoryService) ListCategories(ctx context.Context, filter ListFilter) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx, toDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *ToCategoryResponse(&categories[i])
	}
	return responses, nil
}

// RenameCategory renames a category
func (s *CategoryService) RenameCategory(ctx context.Context, id, actor uuid.UUID, name string) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := category.Rename(actor, name); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// SetCategoryStatus activates or deactivates a category
func (s *CategoryService) SetCategoryStatus(ctx context.Context, id, actor uuid.UUID, active bool) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		err = category.Activate(actor)
	} else {
		err = category.Deactivate(actor)
	}
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// DeleteCategory soft-deletes a category, its subcategories and substance links
func (s *CategoryService) DeleteCategory(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("category deleted",
		zap.String("category_id", id.String()),
		zap.String("deleted_by", actor.String()))
	return nil
}

// CreateSubcategory creates a new subcategory under a category
func (s *CategoryService) CreateSubcategory(ctx context.Context, req CreateSubcategoryRequest) (*SubcategoryResponse, error) {
	parent, err := s.categoryRepo.FindByID(ctx, req.ParentID)
	if err != nil {
		return nil, err
	}

	subcategory, err := catalog.NewSubcategory(req.Actor, parent, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.subcategoryRepo.Save(ctx, subcategory); err != nil {
		return nil, err
	}

	s.logger.Info("subcategory created",
		zap.String("subcategory_id", subcategory.ID.String()),
		zap.String("parent_id", parent.ID.String()))
	return ToSubcategoryResponse(subcategory), nil
}

// ListSubcategories lists the active subcategories of a category
func (s *CategoryService) ListSubcategories(ctx context.Context, categoryID uuid.UUID) ([]SubcategoryResponse, error) {
	subcategories, err := s.subcategoryRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	responses := make([]SubcategoryResponse, len(subcategories))
	for i := range subcategories {
		responses[i] = *ToSubcategoryResponse(&subcategories[i])
	}
	return responses, nil
}

// RenameSubcategory renames a subcategory
func (s *CategoryService) RenameSubcategory(ctx context.Context, id, actor uuid.UUID, name string) (*SubcategoryResponse, error) {
	subcategory, err := s.subcategoryRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := subcategory.Rename(actor, name); err != nil {
		return nil, err
	}

	if err := s.subcategoryRepo.Save(ctx, subcategory); err != nil {
		return nil, err
	}
	return ToSubcategoryResponse(subcategory), nil
}

// DeleteSubcategory soft-deletes a subcategory, detaching it from substance
// links
func (s *CategoryService) DeleteSubcategory(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.subcategoryRepo.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("subcategory deleted",
		zap.String("subcategory_id", id.String()),
		zap.String("deleted_by", actor.String()))
	return nil
}
