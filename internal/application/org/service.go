package org

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinistock/backend/internal/domain/org"
	"github.com/clinistock/backend/internal/domain/shared"
)

// Service handles maintenance of the organizational hierarchy
type Service struct {
	locationRepo org.LocationRepository
	sectionRepo  org.SectionRepository
	wardRepo     org.WardRepository
	logger       *zap.Logger
}

// NewService creates a new org Service
func NewService(
	locationRepo org.LocationRepository,
	sectionRepo org.SectionRepository,
	wardRepo org.WardRepository,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		locationRepo: locationRepo,
		sectionRepo:  sectionRepo,
		wardRepo:     wardRepo,
		logger:       logger,
	}
}

// CreateLocation creates a new location with a unique code
func (s *Service) CreateLocation(ctx context.Context, req CreateLocationRequest) (*LocationResponse, error) {
	exists, err := s.locationRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrConstraintViolation
	}

	location, err := org.NewLocation(req.Actor, req.Name, req.Code)
	if err != nil {
		return nil, err
	}
	if req.Address != nil {
		if err := location.SetAddress(req.Actor, req.Address); err != nil {
			return nil, err
		}
	}

	if err := s.locationRepo.Save(ctx, location); err != nil {
		return nil, err
	}

	s.logger.Info("location created",
		zap.String("location_id", location.ID.String()),
		zap.String("code", location.Code))
	return ToLocationResponse(location), nil
}

// GetLocation retrieves a location by ID
func (s *Service) GetLocation(ctx context.Context, id uuid.UUID) (*LocationResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToLocationResponse(location), nil
}

// GetLocationIncludingDeleted retrieves a location by ID for audit reads
func (s *Service) GetLocationIncludingDeleted(ctx context.Context, id uuid.UUID) (*LocationResponse, error) {
	location, err := s.locationRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToLocationResponse(location), nil
}

// ListLocations lists locations matching the filter
func (s *Service) ListLocations(ctx context.Context, filter ListFilter) ([]LocationResponse, error) {
	locations, err := s.locationRepo.FindAll(ctx, toDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]LocationResponse, len(locations))
	for i := range locations {
		responses[i] = *ToLocationResponse(&locations[i])
	}
	return responses, nil
}

// UpdateLocation updates a location's name and address. Updating a deleted
// location is rejected.
func (s *Service) UpdateLocation(ctx context.Context, id uuid.UUID, req UpdateLocationRequest) (*LocationResponse, error) {
	location, err := s.locationRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := location.Update(req.Actor, req.Name); err != nil {
		return nil, err
	}
	if err := location.SetAddress(req.Actor, req.Address); err != nil {
		return nil, err
	}

	if err := s.locationRepo.Save(ctx, location); err != nil {
		return nil, err
	}
	return ToLocationResponse(location), nil
}

// DeleteLocation soft-deletes a location and everything beneath it
func (s *Service) DeleteLocation(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.locationRepo.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("location deleted",
		zap.String("location_id", id.String()),
		zap.String("deleted_by", actor.String()))
	return nil
}

// CreateSection creates a new section under a location
func (s *Service) CreateSection(ctx context.Context, req CreateSectionRequest) (*SectionResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}

	section, err := org.NewSection(req.Actor, location, req.Name, req.Code, req.Type)
	if err != nil {
		return nil, err
	}

	if err := s.sectionRepo.Save(ctx, section); err != nil {
		return nil, err
	}

	s.logger.Info("section created",
		zap.String("section_id", section.ID.String()),
		zap.String("location_id", location.ID.String()))
	return ToSectionResponse(section), nil
}

// GetSection retrieves a section by ID
func (s *Service) GetSection(ctx context.Context, id uuid.UUID) (*SectionResponse, error) {
	section, err := s.sectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSectionResponse(section), nil
}

// ListSections lists the active sections of a location
func (s *Service) ListSections(ctx context.Context, locationID uuid.UUID) ([]SectionResponse, error) {
	sections, err := s.sectionRepo.FindByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	responses := make([]SectionResponse, len(sections))
	for i := range sections {
		responses[i] = *ToSectionResponse(&sections[i])
	}
	return responses, nil
}

// UpdateSection updates a section's attributes
func (s *Service) UpdateSection(ctx context.Context, id uuid.UUID, req UpdateSectionRequest) (*SectionResponse, error) {
	section, err := s.sectionRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := section.Update(req.Actor, req.Name); err != nil {
		return nil, err
	}
	if err := section.SetOperationalMetadata(req.Actor, req.CostCenterNumber, req.OrderNumber, req.MovementType); err != nil {
		return nil, err
	}
	if err := section.SetIKNumber(req.Actor, req.IKNumber); err != nil {
		return nil, err
	}
	if err := section.SetAddresses(req.Actor, req.Address, req.DeliveryAddress); err != nil {
		return nil, err
	}

	if err := s.sectionRepo.Save(ctx, section); err != nil {
		return nil, err
	}
	return ToSectionResponse(section), nil
}

// SetSectionStatus activates or deactivates a section
func (s *Service) SetSectionStatus(ctx context.Context, id, actor uuid.UUID, active bool) (*SectionResponse, error) {
	section, err := s.sectionRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		err = section.Activate(actor)
	} else {
		err = section.Deactivate(actor)
	}
	if err != nil {
		return nil, err
	}

	if err := s.sectionRepo.Save(ctx, section); err != nil {
		return nil, err
	}
	return ToSectionResponse(section), nil
}

// DeleteSection soft-deletes a section and everything beneath it
func (s *Service) DeleteSection(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.sectionRepo.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("section deleted",
		zap.String("section_id", id.String()),
		zap.String("deleted_by", actor.String()))
	return nil
}

// CreateWard creates a new ward under a section. The section must belong to
// the given location.
func (s *Service) CreateWard(ctx context.Context, req CreateWardRequest) (*WardResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}
	section, err := s.sectionRepo.FindByID(ctx, req.SectionID)
	if err != nil {
		return nil, err
	}

	ward, err := org.NewWard(req.Actor, location, section, req.Name, req.Code)
	if err != nil {
		return nil, err
	}

	if err := s.wardRepo.Save(ctx, ward); err != nil {
		return nil, err
	}

	s.logger.Info("ward created",
		zap.String("ward_id", ward.ID.String()),
		zap.String("section_id", section.ID.String()))
	return ToWardResponse(ward), nil
}

// GetWard retrieves a ward by ID
func (s *Service) GetWard(ctx context.Context, id uuid.UUID) (*WardResponse, error) {
	ward, err := s.wardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToWardResponse(ward), nil
}

// ListWards lists the active wards of a section
func (s *Service) ListWards(ctx context.Context, sectionID uuid.UUID) ([]WardResponse, error) {
	wards, err := s.wardRepo.FindBySection(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	responses := make([]WardResponse, len(wards))
	for i := range wards {
		responses[i] = *ToWardResponse(&wards[i])
	}
	return responses, nil
}

// UpdateWard updates a ward's attributes
func (s *Service) UpdateWard(ctx context.Context, id uuid.UUID, req UpdateWardRequest) (*WardResponse, error) {
	ward, err := s.wardRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ward.Update(req.Actor, req.Name); err != nil {
		return nil, err
	}
	if err := ward.SetOperationalMetadata(req.Actor, req.CostCenterNumber, req.OrderNumber, req.MovementType); err != nil {
		return nil, err
	}

	if err := s.wardRepo.Save(ctx, ward); err != nil {
		return nil, err
	}
	return ToWardResponse(ward), nil
}

// DeleteWard soft-deletes a ward and its batches and scopes
func (s *Service) DeleteWard(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.wardRepo.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("ward deleted",
		zap.String("ward_id", id.String()),
		zap.String("deleted_by", actor.String()))
	return nil
}

func toDomainFilter(filter ListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	domainFilter.IncludeDeleted = filter.IncludeDeleted
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}
	if filter.SortBy != "" {
		domainFilter.OrderBy = filter.SortBy
		if filter.SortDesc {
			domainFilter.OrderDir = "desc"
		} else {
			domainFilter.OrderDir = "asc"
		}
	}
	return domainFilter
}
