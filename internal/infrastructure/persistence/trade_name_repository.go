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

// GormTradeNameRepository implements TradeNameRepository using GORM
type GormTradeNameRepository struct {
	db *gorm.DB
}

// NewGormTradeNameRepository creates a new GormTradeNameRepository
func NewGormTradeNameRepository(db *gorm.DB) *GormTradeNameRepository {
	return &GormTradeNameRepository{db: db}
}

// FindByID finds a trade name by its ID
func (r *GormTradeNameRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.TradeName, error) {
	var tradeName catalog.TradeName
	if err := r.db.WithContext(ctx).First(&tradeName, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tradeName, nil
}

// FindByIDIncludingDeleted finds a trade name by its ID regardless of deletion
func (r *GormTradeNameRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*catalog.TradeName, error) {
	var tradeName catalog.TradeName
	if err := r.db.WithContext(ctx).Unscoped().First(&tradeName, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tradeName, nil
}

// FindBySubstance lists active trade names of a substance
func (r *GormTradeNameRepository) FindBySubstance(ctx context.Context, substanceID uuid.UUID) ([]catalog.TradeName, error) {
	var tradeNames []catalog.TradeName
	if err := r.db.WithContext(ctx).
		Where("active_substance_id = ?", substanceID).
		Order("label_name ASC").
		Find(&tradeNames).Error; err != nil {
		return nil, err
	}
	return tradeNames, nil
}

// FindAll finds all trade names matching the filter
func (r *GormTradeNameRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.TradeName, error) {
	var tradeNames []catalog.TradeName
	query := r.db.WithContext(ctx).Model(&catalog.TradeName{})
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}
	if filter.Search != "" {
		query = query.Where("label_name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := query.Find(&tradeNames).Error; err != nil {
		return nil, err
	}
	return tradeNames, nil
}

// Save creates or updates a trade name
func (r *GormTradeNameRepository) Save(ctx context.Context, tradeName *catalog.TradeName) error {
	return r.db.WithContext(ctx).Save(tradeName).Error
}

// Delete soft-deletes a trade name and cascades to its batches in one
// transaction
func (r *GormTradeNameRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tradeName catalog.TradeName
		if err := tx.Unscoped().First(&tradeName, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if tradeName.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}

		now := time.Now()
		if err := softDelete(tx, &inventory.Batch{}, deletedBy, now, "trade_name_id = ?", id); err != nil {
			return err
		}
		return softDelete(tx, &catalog.TradeName{}, deletedBy, now, "id = ?", id)
	})
}

// Ensure GormTradeNameRepository implements TradeNameRepository
var _ catalog.TradeNameRepository = (*GormTradeNameRepository)(nil)
