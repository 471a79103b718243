package catalog

import (
	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/shared"
)

// CategoryType classifies a product category
type CategoryType string

const (
	CategoryTypeProducible CategoryType = "producible"
	CategoryTypeSolution   CategoryType = "solution"
	CategoryTypeSupportive CategoryType = "supportive"
	CategoryTypeConsumable CategoryType = "consumable"
)

// IsValid reports whether the category type is a known value
func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeProducible, CategoryTypeSolution, CategoryTypeSupportive, CategoryTypeConsumable:
		return true
	}
	return false
}

// CategoryStatus represents the status of a category
type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusInactive CategoryStatus = "inactive"
)

// Category is a top-level grouping of the administrator-maintained product
// catalog.
type Category struct {
	shared.AuditedEntity
	Name   string         `gorm:"not null"`
	Type   CategoryType   `gorm:"type:varchar(20);not null"`
	Status CategoryStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "product_category"
}

// NewCategory creates a new product category
func NewCategory(actor uuid.UUID, name string, categoryType CategoryType) (*Category, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Category creation requires an authenticated actor")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if !categoryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Category type must be producible, solution, supportive or consumable")
	}

	return &Category{
		AuditedEntity: shared.NewAuditedEntity(actor),
		Name:          name,
		Type:          categoryType,
		Status:        CategoryStatusActive,
	}, nil
}

// Rename updates the category's name
func (c *Category) Rename(actor uuid.UUID, name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if err := c.Touch(actor); err != nil {
		return err
	}
	c.Name = name
	return nil
}

// Activate marks the category active
func (c *Category) Activate(actor uuid.UUID) error {
	if err := c.Touch(actor); err != nil {
		return err
	}
	c.Status = CategoryStatusActive
	return nil
}

// Deactivate marks the category inactive
func (c *Category) Deactivate(actor uuid.UUID) error {
	if err := c.Touch(actor); err != nil {
		return err
	}
	c.Status = CategoryStatusInactive
	return nil
}

// IsActive returns true if the category is active
func (c *Category) IsActive() bool {
	return c.Status == CategoryStatusActive
}

// Subcategory is a second-level grouping owned by exactly one category.
type Subcategory struct {
	shared.AuditedEntity
	Name     string    `gorm:"not null"`
	ParentID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Subcategory) TableName() string {
	return "product_subcategory"
}

// NewSubcategory creates a new subcategory under the given category
func NewSubcategory(actor uuid.UUID, parent *Category, name string) (*Subcategory, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Subcategory creation requires an authenticated actor")
	}
	if parent == nil || parent.IsDeleted() {
		return nil, shared.ErrReferentialIntegrity
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Subcategory name cannot be empty")
	}

	return &Subcategory{
		AuditedEntity: shared.NewAuditedEntity(actor),
		Name:          name,
		ParentID:      parent.ID,
	}, nil
}

// Rename updates the subcategory's name
func (s *Subcategory) Rename(actor uuid.UUID, name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Subcategory name cannot be empty")
	}
	if err := s.Touch(actor); err != nil {
		return err
	}
	s.Name = name
	return nil
}
