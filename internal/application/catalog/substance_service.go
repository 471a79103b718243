package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinistock/backend/internal/domain/catalog"
)

// SubstanceService handles maintenance of active substances and their category
// links
type SubstanceService struct {
	substanceRepo   catalog.SubstanceRepository
	categoryRepo    catalog.CategoryRepository
	subcategoryRepo catalog.SubcategoryRepository
	linkRepo        catalog.SubstanceCategoryLinkRepository
	logger          *zap.Logger
}

// NewSubstanceService creates a new SubstanceService
func NewSubstanceService(
	substanceRepo catalog.SubstanceRepository,
	categoryRepo catalog.CategoryRepository,
	subcategoryRepo catalog.SubcategoryRepository,
	linkRepo catalog.SubstanceCategoryLinkRepository,
	logger *zap.Logger,
) *SubstanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubstanceService{
		substanceRepo:   substanceRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		linkRepo:        linkRepo,
		logger:          logger,
	}
}

// Create creates a new substance
func (s *SubstanceService) Create(ctx context.Context, req CreateSubstanceRequest) (*SubstanceResponse, error) {
	substance, err := catalog.NewSubstance(req.Actor, req.Name)
	if err != nil {
		return nil, err
	}

	if req.Unit != "" {
		if err := substance.SetUnit(req.Actor, req.Unit); err != nil {
			return nil, err
		}
	}
	if req.CalculationMode != "" {
		if err := substance.SetCalculationMode(req.Actor, req.CalculationMode); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		if err := substance.SetNotes(req.Actor, req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.substanceRepo.Save(ctx, substance); err != nil {
		return nil, err
	}

	s.logger.Info("substance created",
		zap.String("substance_id", substance.ID.String()))
	return ToSubstanceResponse(substance), nil
}

// GetByID retrieves a substance by ID
func (s *SubstanceService) GetByID(ctx context.Context, id uuid.UUID) (*SubstanceResponse, error) {
	substance, err := s.substanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSubstanceResponse(substance), nil
}

// List lists substances matching the filter
func (s *SubstanceService) List(ctx context.Context, filter ListFilter) ([]SubstanceResponse, error) {
	substances, err := s.substanceRepo.FindAll(ctx, toDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]SubstanceResponse, len(substances))
	for i := range substances {
		responses[i] = *ToSubstanceResponse(&substances[i])
	}
	return responses, nil
}

// Update updates a substance's attributes and dose bounds
func (s *SubstanceService) Update(ctx context.Context, id uuid.UUID, req UpdateSubstanceRequest) (*SubstanceResponse, error) {
	substance, err := s.substanceRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := substance.Rename(req.Actor, req.Name); err != nil {
		return nil, err
	}
	if err := substance.SetUnit(req.Actor, req.Unit); err != nil {
		return nil, err
	}
	if err := substance.SetNotes(req.Actor, req.Notes); err != nil {
		return nil, err
	}
	if err := substance.SetDoseBounds(req.Actor, req.Min, req.Max, req.Rounding, req.DoseLimit); err != nil {
		return nil, err
	}

	if err := s.substanceRepo.Save(ctx, substance); err != nil {
		return nil, err
	}
	return ToSubstanceResponse(substance), nil
}

// Delete soft-deletes a substance, its links, trade names and their batches
func (s *SubstanceService) Delete(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.substanceRepo.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("substance deleted",
		zap.String("substance_id", id.String()),
		zap.String("deleted_by", actor.String()))
	return nil
}

// Link binds a substance to a category, optionally narrowed to a subcategory.
// A subcategory belonging to a different category is rejected.
func (s *SubstanceService) Link(ctx context.Context, req LinkSubstanceRequest) (*SubstanceCategoryLinkResponse, error) {
	substance, err := s.substanceRepo.FindByID(ctx, req.SubstanceID)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	var subcategory *catalog.Subcategory
	if req.SubcategoryID != nil {
		if subcategory, err = s.subcategoryRepo.FindByID(ctx, *req.SubcategoryID); err != nil {
			return nil, err
		}
	}

	link, err := catalog.NewSubstanceCategoryLink(req.Actor, substance, category, subcategory)
	if err != nil {
		return nil, err
	}

	if err := s.linkRepo.Save(ctx, link); err != nil {
		return nil, err
	}

	s.logger.Info("substance linked to category",
		zap.String("substance_id", substance.ID.String()),
		zap.String("category_id", category.ID.String()))
	return ToSubstanceCategoryLinkResponse(link), nil
}

// Unlink soft-deletes a single substance-category link
func (s *SubstanceService) Unlink(ctx context.Context, linkID, actor uuid.UUID) error {
	return s.linkRepo.Delete(ctx, linkID, actor)
}

// ListLinks lists the active category links of a substance
func (s *SubstanceService) ListLinks(ctx context.Context, substanceID uuid.UUID) ([]SubstanceCategoryLinkResponse, error) {
	links, err := s.linkRepo.FindBySubstance(ctx, substanceID)
	if err != nil {
		return nil, err
	}

	responses := make([]SubstanceCategoryLinkResponse, len(links))
	for i := range links {
		responses[i] = *ToSubstanceCategoryLinkResponse(&links[i])
	}
	return responses, nil
}
