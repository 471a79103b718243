package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinistock/backend/internal/domain/catalog"
)

// TradeNameService handles maintenance of trade names
type TradeNameService struct {
	tradeNameRepo         catalog.TradeNameRepository
	substanceRepo         catalog.SubstanceRepository
	vendorRepo            catalog.VendorRepository
	contraindicationRepo  catalog.ContraindicationRepository
	containerMaterialRepo catalog.ContainerMaterialRepository
	logger                *zap.Logger
}

// NewTradeNameService creates a new TradeNameService
func NewTradeNameService(
	tradeNameRepo catalog.TradeNameRepository,
	substanceRepo catalog.SubstanceRepository,
	vendorRepo catalog.VendorRepository,
	contraindicationRepo catalog.ContraindicationRepository,
	containerMaterialRepo catalog.ContainerMaterialRepository,
	logger *zap.Logger,
) *TradeNameService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TradeNameService{
		tradeNameRepo:         tradeNameRepo,
		substanceRepo:         substanceRepo,
		vendorRepo:            vendorRepo,
		contraindicationRepo:  contraindicationRepo,
		containerMaterialRepo: containerMaterialRepo,
		logger:                logger,
	}
}

// Create creates a new trade name for a substance. Producer and supplier may
// resolve to the same vendor, different vendors, or stay unset.
func (s *TradeNameService) Create(ctx context.Context, req CreateTradeNameRequest) (*TradeNameResponse, error) {
	substance, err := s.substanceRepo.FindByID(ctx, req.SubstanceID)
	if err != nil {
		return nil, err
	}

	tradeName, err := catalog.NewTradeName(req.Actor, substance, req.LabelName)
	if err != nil {
		return nil, err
	}

	if req.ProducerID != nil {
		producer, err := s.vendorRepo.FindByID(ctx, *req.ProducerID)
		if err != nil {
			return nil, err
		}
		if err := tradeName.AssignProducer(req.Actor, producer); err != nil {
			return nil, err
		}
	}
	if req.SupplierID != nil {
		supplier, err := s.vendorRepo.FindByID(ctx, *req.SupplierID)
		if err != nil {
			return nil, err
		}
		if err := tradeName.AssignSupplier(req.Actor, supplier); err != nil {
			return nil, err
		}
	}
	if req.ContraindicationID != nil {
		contraindication, err := s.contraindicationRepo.FindByID(ctx, *req.ContraindicationID)
		if err != nil {
			return nil, err
		}
		if err := tradeName.AssignContraindication(req.Actor, contraindication); err != nil {
			return nil, err
		}
	}
	if req.ContainerMaterialID != nil {
		material, err := s.containerMaterialRepo.FindByID(ctx, *req.ContainerMaterialID)
		if err != nil {
			return nil, err
		}
		if err := tradeName.AssignContainerMaterial(req.Actor, material); err != nil {
			return nil, err
		}
	}

	if err := tradeName.SetMeasurements(req.Actor, req.Strength, req.Density, req.Volume); err != nil {
		return nil, err
	}
	if err := tradeName.SetConcentrationBounds(req.Actor, req.MinConcentration, req.MaxConcentration); err != nil {
		return nil, err
	}
	if err := tradeName.SetArticleNumber(req.Actor, req.ArticleNumber); err != nil {
		return nil, err
	}

	if err := s.tradeNameRepo.Save(ctx, tradeName); err != nil {
		return nil, err
	}

	s.logger.Info("trade name created",
		zap.String("trade_name_id", tradeName.ID.String()),
		zap.String("substance_id", substance.ID.String()))
	return ToTradeNameResponse(tradeName), nil
}

// GetByID retrieves a trade name by ID
func (s *TradeNameService) GetByID(ctx context.Context, id uuid.UUID) (*TradeNameResponse, error) {
	tradeName, err := s.tradeNameRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToTradeNameResponse(tradeName), nil
}

// ListBySubstance lists the active trade names of a substance
func (s *TradeNameService) ListBySubstance(ctx context.Context, substanceID uuid.UUID) ([]TradeNameResponse, error) {
	tradeNames, err := s.tradeNameRepo.FindBySubstance(ctx, substanceID)
	if err != nil {
		return nil, err
	}

	responses := make([]TradeNameResponse, len(tradeNames))
	for i := range tradeNames {
		responses[i] = *ToTradeNameResponse(&tradeNames[i])
	}
	return responses, nil
}

// Relabel updates a trade name's label
func (s *TradeNameService) Relabel(ctx context.Context, id, actor uuid.UUID, labelName string) (*TradeNameResponse, error) {
	tradeName, err := s.tradeNameRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tradeName.Relabel(actor, labelName); err != nil {
		return nil, err
	}

	if err := s.tradeNameRepo.Save(ctx, tradeName); err != nil {
		return nil, err
	}
	return ToTradeNameResponse(tradeName), nil
}

// AssignVendors sets the producer and supplier links; a nil ID clears the
// corresponding link
func (s *TradeNameService) AssignVendors(ctx context.Context, id, actor uuid.UUID, producerID, supplierID *uuid.UUID) (*TradeNameResponse, error) {
	tradeName, err := s.tradeNameRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	var producer *catalog.Vendor
	if producerID != nil {
		if producer, err = s.vendorRepo.FindByID(ctx, *producerID); err != nil {
			return nil, err
		}
	}
	if err := tradeName.AssignProducer(actor, producer); err != nil {
		return nil, err
	}

	var supplier *catalog.Vendor
	if supplierID != nil {
		if supplier, err = s.vendorRepo.FindByID(ctx, *supplierID); err != nil {
			return nil, err
		}
	}
	if err := tradeName.AssignSupplier(actor, supplier); err != nil {
		return nil, err
	}

	if err := s.tradeNameRepo.Save(ctx, tradeName); err != nil {
		return nil, err
	}
	return ToTradeNameResponse(tradeName), nil
}

// Delete soft-deletes a trade name and its batches
func (s *TradeNameService) Delete(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.tradeNameRepo.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("trade name deleted",
		zap.String("trade_name_id", id.String()),
		zap.String("deleted_by", actor.String()))
	return nil
}
