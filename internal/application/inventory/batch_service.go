package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	accessapp "github.com/clinistock/backend/internal/application/access"
	"github.com/clinistock/backend/internal/domain/catalog"
	"github.com/clinistock/backend/internal/domain/inventory"
	"github.com/clinistock/backend/internal/domain/org"
)

// Authorizer checks whether a user's scope set covers an organizational triple
type Authorizer interface {
	Authorize(ctx context.Context, req accessapp.AuthorizeRequest) error
}

// BatchService handles the batch ledger. Every write is authorized against the
// acting user's scope set before it touches storage.
type BatchService struct {
	batchRepo     inventory.BatchRepository
	locationRepo  org.LocationRepository
	sectionRepo   org.SectionRepository
	wardRepo      org.WardRepository
	tradeNameRepo catalog.TradeNameRepository
	authorizer    Authorizer
	logger        *zap.Logger
}

// NewBatchService creates a new BatchService
func NewBatchService(
	batchRepo inventory.BatchRepository,
	locationRepo org.LocationRepository,
	sectionRepo org.SectionRepository,
	wardRepo org.WardRepository,
	tradeNameRepo catalog.TradeNameRepository,
	authorizer Authorizer,
	logger *zap.Logger,
) *BatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchService{
		batchRepo:     batchRepo,
		locationRepo:  locationRepo,
		sectionRepo:   sectionRepo,
		wardRepo:      wardRepo,
		tradeNameRepo: tradeNameRepo,
		authorizer:    authorizer,
		logger:        logger,
	}
}

// Create registers a batch of a trade name at a ward. The organizational
// triple must be consistent and the actor's scopes must cover it.
func (s *BatchService) Create(ctx context.Context, req CreateBatchRequest) (*BatchResponse, error) {
	if err := s.authorizer.Authorize(ctx, accessapp.AuthorizeRequest{
		UserID:     req.Actor,
		LocationID: req.LocationID,
		SectionID:  req.SectionID,
		WardID:     req.WardID,
	}); err != nil {
		return nil, err
	}

	location, err := s.locationRepo.FindByID(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}
	section, err := s.sectionRepo.FindByID(ctx, req.SectionID)
	if err != nil {
		return nil, err
	}
	ward, err := s.wardRepo.FindByID(ctx, req.WardID)
	if err != nil {
		return nil, err
	}
	tradeName, err := s.tradeNameRepo.FindByID(ctx, req.TradeNameID)
	if err != nil {
		return nil, err
	}

	batch, err := inventory.NewBatch(req.Actor, location, section, ward, tradeName, req.Name, req.Quantity)
	if err != nil {
		return nil, err
	}
	if req.ExpiryDate != nil {
		if err := batch.SetExpiryDate(req.Actor, req.ExpiryDate); err != nil {
			return nil, err
		}
	}

	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	s.logger.Info("batch created",
		zap.String("batch_id", batch.ID.String()),
		zap.String("ward_id", ward.ID.String()),
		zap.String("trade_name_id", tradeName.ID.String()))
	return ToBatchResponse(batch), nil
}

// GetByID retrieves a batch, enforcing the actor's scopes
func (s *BatchService) GetByID(ctx context.Context, id, actor uuid.UUID) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizer.Authorize(ctx, accessapp.AuthorizeRequest{
		UserID:     actor,
		LocationID: batch.LocationID,
		SectionID:  batch.SectionID,
		WardID:     batch.WardID,
	}); err != nil {
		return nil, err
	}
	return ToBatchResponse(batch), nil
}

// GetByIDIncludingDeleted retrieves a batch for audit reads, enforcing the
// actor's scopes
func (s *BatchService) GetByIDIncludingDeleted(ctx context.Context, id, actor uuid.UUID) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizer.Authorize(ctx, accessapp.AuthorizeRequest{
		UserID:     actor,
		LocationID: batch.LocationID,
		SectionID:  batch.SectionID,
		WardID:     batch.WardID,
	}); err != nil {
		return nil, err
	}
	return ToBatchResponse(batch), nil
}

// ListByWard lists the active batches of a ward, enforcing the actor's scopes
func (s *BatchService) ListByWard(ctx context.Context, wardID, actor uuid.UUID) ([]BatchResponse, error) {
	ward, err := s.wardRepo.FindByID(ctx, wardID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizer.Authorize(ctx, accessapp.AuthorizeRequest{
		UserID:     actor,
		LocationID: ward.LocationID,
		SectionID:  ward.SectionID,
		WardID:     ward.ID,
	}); err != nil {
		return nil, err
	}

	batches, err := s.batchRepo.FindByWard(ctx, wardID)
	if err != nil {
		return nil, err
	}

	responses := make([]BatchResponse, len(batches))
	for i := range batches {
		responses[i] = *ToBatchResponse(&batches[i])
	}
	return responses, nil
}

// Update updates a batch's name, quantity and expiry date
func (s *BatchService) Update(ctx context.Context, id uuid.UUID, req UpdateBatchRequest) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizer.Authorize(ctx, accessapp.AuthorizeRequest{
		UserID:     req.Actor,
		LocationID: batch.LocationID,
		SectionID:  batch.SectionID,
		WardID:     batch.WardID,
	}); err != nil {
		return nil, err
	}

	if err := batch.Rename(req.Actor, req.Name); err != nil {
		return nil, err
	}
	if err := batch.SetQuantity(req.Actor, req.Quantity); err != nil {
		return nil, err
	}
	if err := batch.SetExpiryDate(req.Actor, req.ExpiryDate); err != nil {
		return nil, err
	}

	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}
	return ToBatchResponse(batch), nil
}

// Delete soft-deletes a batch after checking the actor's scopes
func (s *BatchService) Delete(ctx context.Context, id, actor uuid.UUID) error {
	batch, err := s.batchRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorizer.Authorize(ctx, accessapp.AuthorizeRequest{
		UserID:     actor,
		LocationID: batch.LocationID,
		SectionID:  batch.SectionID,
		WardID:     batch.WardID,
	}); err != nil {
		return err
	}

	if err := s.batchRepo.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("batch deleted",
		zap.String("batch_id", id.String()),
		zap.String("deleted_by", actor.String()))
	return nil
}
