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

// GormVendorRepository implements VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// FindByID finds a vendor by its ID
func (r *GormVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Vendor, error) {
	var vendor catalog.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

// FindByIDIncludingDeleted finds a vendor by its ID regardless of deletion
func (r *GormVendorRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*catalog.Vendor, error) {
	var vendor catalog.Vendor
	if err := r.db.WithContext(ctx).Unscoped().First(&vendor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

// FindAll finds all vendors matching the filter
func (r *GormVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Vendor, error) {
	var vendors []catalog.Vendor
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.Vendor{}), filter)
	if err := query.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// Save creates or updates a vendor
func (r *GormVendorRepository) Save(ctx context.Context, vendor *catalog.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

// Delete soft-deletes a vendor and cascades to trade names referencing it as
// producer or supplier, and to their batches, in one transaction
func (r *GormVendorRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vendor catalog.Vendor
		if err := tx.Unscoped().First(&vendor, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if vendor.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}

		now := time.Now()
		tradeNames := tx.Model(&catalog.TradeName{}).
			Select("id").
			Where("producer_id = ? OR supplier_id = ?", id, id)
		if err := softDelete(tx, &inventory.Batch{}, deletedBy, now, "trade_name_id IN (?)", tradeNames); err != nil {
			return err
		}
		if err := softDelete(tx, &catalog.TradeName{}, deletedBy, now, "producer_id = ? OR supplier_id = ?", id, id); err != nil {
			return err
		}
		return softDelete(tx, &catalog.Vendor{}, deletedBy, now, "id = ?", id)
	})
}

// Ensure GormVendorRepository implements VendorRepository
var _ catalog.VendorRepository = (*GormVendorRepository)(nil)
