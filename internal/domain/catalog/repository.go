package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/shared"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)
	Save(ctx context.Context, category *Category) error

	// Delete soft-deletes a category and cascades to its subcategories and
	// substance links in one transaction
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// SubcategoryRepository defines the interface for subcategory persistence
type SubcategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Subcategory, error)
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*Subcategory, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]Subcategory, error)
	Save(ctx context.Context, subcategory *Subcategory) error

	// Delete soft-deletes a subcategory and detaches it from substance links
	// (set null) in one transaction
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// SubstanceRepository defines the interface for active substance persistence
type SubstanceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Substance, error)
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*Substance, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Substance, error)
	Save(ctx context.Context, substance *Substance) error

	// Delete soft-deletes a substance and cascades to its category links,
	// trade names and their batches in one transaction
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// SubstanceCategoryLinkRepository defines the interface for link persistence
type SubstanceCategoryLinkRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SubstanceCategoryLink, error)
	FindBySubstance(ctx context.Context, substanceID uuid.UUID) ([]SubstanceCategoryLink, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]SubstanceCategoryLink, error)
	Save(ctx context.Context, link *SubstanceCategoryLink) error
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// VendorRepository defines the interface for vendor persistence
type VendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Vendor, error)
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*Vendor, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Vendor, error)
	Save(ctx context.Context, vendor *Vendor) error

	// Delete soft-deletes a vendor and cascades to trade names referencing it
	// as producer or supplier, and to their batches, in one transaction
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// ContraindicationRepository defines the interface for contraindication
// persistence
type ContraindicationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Contraindication, error)
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*Contraindication, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Contraindication, error)
	Save(ctx context.Context, contraindication *Contraindication) error

	// Delete soft-deletes a contraindication after detaching it (set null)
	// from referencing trade names, in one transaction
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// ContainerMaterialRepository defines the interface for container material
// persistence
type ContainerMaterialRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ContainerMaterial, error)
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*ContainerMaterial, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ContainerMaterial, error)
	Save(ctx context.Context, material *ContainerMaterial) error

	// Delete soft-deletes a container material after detaching it (set null)
	// from referencing trade names, in one transaction
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// TradeNameRepository defines the interface for trade name persistence
type TradeNameRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TradeName, error)
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*TradeName, error)
	FindBySubstance(ctx context.Context, substanceID uuid.UUID) ([]TradeName, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]TradeName, error)
	Save(ctx context.Context, tradeName *TradeName) error

	// Delete soft-deletes a trade name and cascades to its batches in one
	// transaction
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}
