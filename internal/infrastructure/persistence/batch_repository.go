package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinistock/backend/internal/domain/inventory"
	"github.com/clinistock/backend/internal/domain/shared"
)

// GormBatchRepository implements BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// FindByID finds a batch by its ID
func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Batch, error) {
	var batch inventory.Batch
	if err := r.db.WithContext(ctx).First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindByIDIncludingDeleted finds a batch by its ID regardless of deletion
func (r *GormBatchRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*inventory.Batch, error) {
	var batch inventory.Batch
	if err := r.db.WithContext(ctx).Unscoped().First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindByWard lists active batches stored at a ward
func (r *GormBatchRepository) FindByWard(ctx context.Context, wardID uuid.UUID) ([]inventory.Batch, error) {
	var batches []inventory.Batch
	if err := r.db.WithContext(ctx).
		Where("ward_id = ?", wardID).
		Order("expiry_date ASC NULLS LAST").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// FindByTradeName lists active batches of a trade name
func (r *GormBatchRepository) FindByTradeName(ctx context.Context, tradeNameID uuid.UUID) ([]inventory.Batch, error) {
	var batches []inventory.Batch
	if err := r.db.WithContext(ctx).
		Where("trade_name_id = ?", tradeNameID).
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// FindAll finds all batches matching the filter
func (r *GormBatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Batch, error) {
	var batches []inventory.Batch
	query := applyFilter(r.db.WithContext(ctx).Model(&inventory.Batch{}), filter)
	if err := query.Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// Save creates or updates a batch
func (r *GormBatchRepository) Save(ctx context.Context, batch *inventory.Batch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

// Delete soft-deletes a single batch
func (r *GormBatchRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var batch inventory.Batch
		if err := tx.Unscoped().First(&batch, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if batch.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}
		return softDelete(tx, &inventory.Batch{}, deletedBy, time.Now(), "id = ?", id)
	})
}

// Ensure GormBatchRepository implements BatchRepository
var _ inventory.BatchRepository = (*GormBatchRepository)(nil)
