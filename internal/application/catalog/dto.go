package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clinistock/backend/internal/domain/catalog"
	"github.com/clinistock/backend/internal/domain/shared"
	"github.com/clinistock/backend/internal/domain/shared/valueobject"
)

// CreateCategoryRequest is the request to create a category
type CreateCategoryRequest struct {
	Actor uuid.UUID
	Name  string
	Type  catalog.CategoryType
}

// CategoryResponse is the response representation of a category
type CategoryResponse struct {
	ID        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Type      catalog.CategoryType   `json:"type"`
	Status    catalog.CategoryStatus `json:"status"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// ToCategoryResponse converts a category to its response representation
func ToCategoryResponse(category *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Type:      category.Type,
		Status:    category.Status,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// CreateSubcategoryRequest is the request to create a subcategory
type CreateSubcategoryRequest struct {
	Actor    uuid.UUID
	ParentID uuid.UUID
	Name     string
}

// SubcategoryResponse is the response representation of a subcategory
type SubcategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ParentID  uuid.UUID `json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToSubcategoryResponse converts a subcategory to its response representation
func ToSubcategoryResponse(subcategory *catalog.Subcategory) *SubcategoryResponse {
	return &SubcategoryResponse{
		ID:        subcategory.ID,
		Name:      subcategory.Name,
		ParentID:  subcategory.ParentID,
		CreatedAt: subcategory.CreatedAt,
		UpdatedAt: subcategory.UpdatedAt,
	}
}

// CreateSubstanceRequest is the request to create a substance
type CreateSubstanceRequest struct {
	Actor           uuid.UUID
	Name            string
	Unit            string
	CalculationMode catalog.CalculationMode
	Notes           string
}

// UpdateSubstanceRequest is the request to update a substance
type UpdateSubstanceRequest struct {
	Actor     uuid.UUID
	Name      string
	Unit      string
	Notes     string
	Min       decimal.NullDecimal
	Max       decimal.NullDecimal
	Rounding  decimal.NullDecimal
	DoseLimit decimal.NullDecimal
}

// SubstanceResponse is the response representation of a substance
type SubstanceResponse struct {
	ID              uuid.UUID               `json:"id"`
	Name            string                  `json:"name"`
	Unit            string                  `json:"unit,omitempty"`
	CalculationMode catalog.CalculationMode `json:"calculationMode,omitempty"`
	Min             decimal.NullDecimal     `json:"min"`
	Max             decimal.NullDecimal     `json:"max"`
	Rounding        decimal.NullDecimal     `json:"rounding"`
	DoseLimit       decimal.NullDecimal     `json:"doseLimit"`
	Notes           string                  `json:"notes,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// ToSubstanceResponse converts a substance to its response representation
func ToSubstanceResponse(substance *catalog.Substance) *SubstanceResponse {
	return &SubstanceResponse{
		ID:              substance.ID,
		Name:            substance.Name,
		Unit:            substance.Unit,
		CalculationMode: substance.CalculationMode,
		Min:             substance.Min,
		Max:             substance.Max,
		Rounding:        substance.Rounding,
		DoseLimit:       substance.DoseLimit,
		Notes:           substance.Notes,
		CreatedAt:       substance.CreatedAt,
		UpdatedAt:       substance.UpdatedAt,
	}
}

// LinkSubstanceRequest is the request to link a substance to a category,
// optionally narrowed to a subcategory
type LinkSubstanceRequest struct {
	Actor         uuid.UUID
	SubstanceID   uuid.UUID
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
}

// SubstanceCategoryLinkResponse is the response representation of a link
type SubstanceCategoryLinkResponse struct {
	ID            uuid.UUID  `json:"id"`
	SubstanceID   uuid.UUID  `json:"substanceId"`
	CategoryID    uuid.UUID  `json:"categoryId"`
	SubcategoryID *uuid.UUID `json:"subcategoryId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ToSubstanceCategoryLinkResponse converts a link to its response representation
func ToSubstanceCategoryLinkResponse(link *catalog.SubstanceCategoryLink) *SubstanceCategoryLinkResponse {
	return &SubstanceCategoryLinkResponse{
		ID:            link.ID,
		SubstanceID:   link.SubstanceID,
		CategoryID:    link.CategoryID,
		SubcategoryID: link.SubcategoryID,
		CreatedAt:     link.CreatedAt,
	}
}

// CreateVendorRequest is the request to create a vendor
type CreateVendorRequest struct {
	Actor   uuid.UUID
	Name    string
	Type    catalog.VendorType
	Address *valueobject.Address
	Notes   string
}

// VendorResponse is the response representation of a vendor
type VendorResponse struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Type      catalog.VendorType   `json:"type"`
	Address   *valueobject.Address `json:"address,omitempty"`
	Notes     string               `json:"notes,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// ToVendorResponse converts a vendor to its response representation
func ToVendorResponse(vendor *catalog.Vendor) *VendorResponse {
	return &VendorResponse{
		ID:        vendor.ID,
		Name:      vendor.Name,
		Type:      vendor.Type,
		Address:   vendor.Address,
		Notes:     vendor.Notes,
		CreatedAt: vendor.CreatedAt,
		UpdatedAt: vendor.UpdatedAt,
	}
}

// ReferenceResponse is the response representation of a contraindication or
// container material
type ReferenceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateTradeNameRequest is the request to create a trade name
type CreateTradeNameRequest struct {
	Actor               uuid.UUID
	SubstanceID         uuid.UUID
	LabelName           string
	ProducerID          *uuid.UUID
	SupplierID          *uuid.UUID
	ContraindicationID  *uuid.UUID
	ContainerMaterialID *uuid.UUID
	Strength            decimal.NullDecimal
	Density             decimal.NullDecimal
	Volume              decimal.NullDecimal
	MinConcentration    decimal.NullDecimal
	MaxConcentration    decimal.NullDecimal
	ArticleNumber       *int
}

// TradeNameResponse is the response representation of a trade name
type TradeNameResponse struct {
	ID                  uuid.UUID           `json:"id"`
	SubstanceID         uuid.UUID           `json:"substanceId"`
	LabelName           string              `json:"labelName"`
	ProducerID          *uuid.UUID          `json:"producerId,omitempty"`
	SupplierID          *uuid.UUID          `json:"supplierId,omitempty"`
	ContraindicationID  *uuid.UUID          `json:"contraindicationId,omitempty"`
	ContainerMaterialID *uuid.UUID          `json:"containerMaterialId,omitempty"`
	Strength            decimal.NullDecimal `json:"strength"`
	Density             decimal.NullDecimal `json:"density"`
	Volume              decimal.NullDecimal `json:"volume"`
	MinConcentration    decimal.NullDecimal `json:"minConcentration"`
	MaxConcentration    decimal.NullDecimal `json:"maxConcentration"`
	ArticleNumber       *int                `json:"articleNumber,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

// ToTradeNameResponse converts a trade name to its response representation
func ToTradeNameResponse(tradeName *catalog.TradeName) *TradeNameResponse {
	return &TradeNameResponse{
		ID:                  tradeName.ID,
		SubstanceID:         tradeName.SubstanceID,
		LabelName:           tradeName.LabelName,
		ProducerID:          tradeName.ProducerID,
		SupplierID:          tradeName.SupplierID,
		ContraindicationID:  tradeName.ContraindicationID,
		ContainerMaterialID: tradeName.ContainerMaterialID,
		Strength:            tradeName.Strength,
		Density:             tradeName.Density,
		Volume:              tradeName.Volume,
		MinConcentration:    tradeName.MinConcentration,
		MaxConcentration:    tradeName.MaxConcentration,
		ArticleNumber:       tradeName.ArticleNumber,
		CreatedAt:           tradeName.CreatedAt,
		UpdatedAt:           tradeName.UpdatedAt,
	}
}

// ListFilter is the common list filter for catalog entities
type ListFilter struct {
	Search         string
	Page           int
	PageSize       int
	SortBy         string
	SortDesc       bool
	IncludeDeleted bool
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
