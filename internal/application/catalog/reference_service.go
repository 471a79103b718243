package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinistock/backend/internal/domain/catalog"
)

// ReferenceService handles maintenance of contraindications and container
// materials
type ReferenceService struct {
	contraindicationRepo  catalog.ContraindicationRepository
	containerMaterialRepo catalog.ContainerMaterialRepository
	logger                *zap.Logger
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(
	contraindicationRepo catalog.ContraindicationRepository,
	containerMaterialRepo catalog.ContainerMaterialRepository,
	logger *zap.Logger,
) *ReferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceService{
		contraindicationRepo:  contraindicationRepo,
		containerMaterialRepo: containerMaterialRepo,
		logger:                logger,
	}
}

// CreateContraindication creates a new contraindication
func (s *ReferenceService) CreateContraindication(ctx context.Context, actor uuid.UUID, name string) (*ReferenceResponse, error) {
	contraindication, err := catalog.NewContraindication(actor, name)
	if err != nil {
		return nil, err
	}

	if err := s.contraindicationRepo.Save(ctx, contraindication); err != nil {
		return nil, err
	}
	return &ReferenceResponse{
		ID:        contraindication.ID,
		Name:      contraindication.Name,
		CreatedAt: contraindication.CreatedAt,
		UpdatedAt: contraindication.UpdatedAt,
	}, nil
}

// ListContraindications lists contraindications matching the filter
func (s *ReferenceService) ListContraindications(ctx context.Context, filter ListFilter) ([]ReferenceResponse, error) {
	contraindications, err := s.contraindicationRepo.FindAll(ctx, toDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]ReferenceResponse, len(contraindications))
	for i, c := range contraindications {
		responses[i] = ReferenceResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
	}
	return responses, nil
}

// RenameContraindication renames a contraindication
func (s *ReferenceService) RenameContraindication(ctx context.Context, id, actor uuid.UUID, name string) (*ReferenceResponse, error) {
	contraindication, err := s.contraindicationRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := contraindication.Rename(actor, name); err != nil {
		return nil, err
	}

	if err := s.contraindicationRepo.Save(ctx, contraindication); err != nil {
		return nil, err
	}
	return &ReferenceResponse{
		ID:        contraindication.ID,
		Name:      contraindication.Name,
		CreatedAt: contraindication.CreatedAt,
		UpdatedAt: contraindication.UpdatedAt,
	}, nil
}

// DeleteContraindication detaches the contraindication from trade names and
// soft-deletes it
func (s *ReferenceService) DeleteContraindication(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.contraindicationRepo.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("contraindication deleted",
		zap.String("contraindication_id", id.String()),
		zap.String("deleted_by", actor.String()))
	return nil
}

// CreateContainerMaterial creates a new container material
func (s *ReferenceService) CreateContainerMaterial(ctx context.Context, actor uuid.UUID, name string) (*ReferenceResponse, error) {
	material, err := catalog.NewContainerMaterial(actor, name)
	if err != nil {
		return nil, err
	}

	if err := s.containerMaterialRepo.Save(ctx, material); err != nil {
		return nil, err
	}
	return &ReferenceResponse{
		ID:        material.ID,
		Name:      material.Name,
		CreatedAt: material.CreatedAt,
		UpdatedAt: material.UpdatedAt,
	}, nil
}

// ListContainerMaterials lists container materials matching the filter
func (s *ReferenceService) ListContainerMaterials(ctx context.Context, filter ListFilter) ([]ReferenceResponse, error) {
	materials, err := s.containerMaterialRepo.FindAll(ctx, toDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]ReferenceResponse, len(materials))
	for i, m := range materials {
		responses[i] = ReferenceResponse{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
	}
	return responses, nil
}

// RenameContainerMaterial renames a container material
func (s *ReferenceService) RenameContainerMaterial(ctx context.Context, id, actor uuid.UUID, name string) (*ReferenceResponse, error) {
	material, err := s.containerMaterialRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := material.Rename(actor, name); err != nil {
		return nil, err
	}

	if err := s.containerMaterialRepo.Save(ctx, material); err != nil {
		return nil, err
	}
	return &ReferenceResponse{
		ID:        material.ID,
		Name:      material.Name,
		CreatedAt: material.CreatedAt,
		UpdatedAt: material.UpdatedAt,
	}, nil
}

// DeleteContainerMaterial detaches the container material from trade names and
// soft-deletes it
func (s *ReferenceService) DeleteContainerMaterial(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.containerMaterialRepo.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("container material deleted",
		zap.String("container_material_id", id.String()),
		zap.String("deleted_by", actor.String()))
	return nil
}
