package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinistock/backend/internal/domain/catalog"
	"github.com/clinistock/backend/internal/domain/shared/valueobject"
)

// VendorService handles maintenance of vendors
type VendorService struct {
	vendorRepo catalog.VendorRepository
	logger     *zap.Logger
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo catalog.VendorRepository, logger *zap.Logger) *VendorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VendorService{vendorRepo: vendorRepo, logger: logger}
}

// Create creates a new vendor
func (s *VendorService) Create(ctx context.Context, req CreateVendorRequest) (*VendorResponse, error) {
	vendor, err := catalog.NewVendor(req.Actor, req.Name, req.Type)
	if err != nil {
		return nil, err
	}

	if req.Address != nil {
		if err := vendor.SetAddress(req.Actor, req.Address); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		if err := vendor.SetNotes(req.Actor, req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	s.logger.Info("vendor created",
		zap.String("vendor_id", vendor.ID.String()),
		zap.String("type", string(vendor.Type)))
	return ToVendorResponse(vendor), nil
}

// GetByID retrieves a vendor by ID
func (s *VendorService) GetByID(ctx context.Context, id uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToVendorResponse(vendor), nil
}

// List lists vendors matching the filter
func (s *VendorService) List(ctx context.Context, filter ListFilter) ([]VendorResponse, error) {
	vendors, err := s.vendorRepo.FindAll(ctx, toDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = *ToVendorResponse(&vendors[i])
	}
	return responses, nil
}

// Update updates a vendor's name, address and notes
func (s *VendorService) Update(ctx context.Context, id, actor uuid.UUID, name string, address *valueobject.Address, notes string) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := vendor.Rename(actor, name); err != nil {
		return nil, err
	}
	if err := vendor.SetAddress(actor, address); err != nil {
		return nil, err
	}
	if err := vendor.SetNotes(actor, notes); err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}
	return ToVendorResponse(vendor), nil
}

// Delete soft-deletes a vendor and cascades to trade names referencing it as
// producer or supplier
func (s *VendorService) Delete(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.vendorRepo.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("vendor deleted",
		zap.String("vendor_id", id.String()),
		zap.String("deleted_by", actor.String()))
	return nil
}
