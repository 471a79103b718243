package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clinistock/backend/internal/domain/shared"
)

// CalculationMode selects how a dose for the substance is derived. Evaluation
// of the mode is a downstream business-rule concern; the catalog only stores
// it.
type CalculationMode string

const (
	CalculationModeBSA      CalculationMode = "bsa"
	CalculationModeWeight   CalculationMode = "weight"
	CalculationModeAbsolute CalculationMode = "absolute"
	CalculationModeAUC      CalculationMode = "auc"
)

// IsValid reports whether the calculation mode is a known value
func (m CalculationMode) IsValid() bool {
	switch m {
	case CalculationModeBSA, CalculationModeWeight, CalculationModeAbsolute, CalculationModeAUC:
		return true
	}
	return false
}

// Substance is an active pharmaceutical substance. It can belong to multiple
// (category, subcategory) pairs at once through SubstanceCategoryLink.
type Substance struct {
	shared.AuditedEntity
	Name            string          `gorm:"not null"`
	Unit            string
	CalculationMode CalculationMode     `gorm:"type:varchar(20)"`
	Min             decimal.NullDecimal `gorm:"type:decimal(10,4)"`
	Max             decimal.NullDecimal `gorm:"type:decimal(10,4)"`
	Rounding        decimal.NullDecimal `gorm:"type:decimal(10,4)"`
	DoseLimit       decimal.NullDecimal `gorm:"type:decimal(10,4)"`
	Notes           string
}

// TableName returns the table name for GORM
func (Substance) TableName() string {
	return "active_substance"
}

// NewSubstance creates a new active substance
func NewSubstance(actor uuid.UUID, name string) (*Substance, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Substance creation requires an authenticated actor")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Substance name cannot be empty")
	}

	return &Substance{
		AuditedEntity: shared.NewAuditedEntity(actor),
		Name:          name,
	}, nil
}

// Rename updates the substance's name
func (s *Substance) Rename(actor uuid.UUID, name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Substance name cannot be empty")
	}
	if err := s.Touch(actor); err != nil {
		return err
	}
	s.Name = name
	return nil
}

// SetUnit sets the substance's dosage unit
func (s *Substance) SetUnit(actor uuid.UUID, unit string) error {
	if err := s.Touch(actor); err != nil {
		return err
	}
	s.Unit = unit
	return nil
}

// SetCalculationMode sets the dose calculation mode
func (s *Substance) SetCalculationMode(actor uuid.UUID, mode CalculationMode) error {
	if !mode.IsValid() {
		return shared.NewDomainError("INVALID_CALCULATION_MODE", "Calculation mode must be bsa, weight, absolute or auc")
	}
	if err := s.Touch(actor); err != nil {
		return err
	}
	s.CalculationMode = mode
	return nil
}

// SetDoseBounds sets the advisory dose bounds. Validating an actual strength
// value against them is not part of the catalog.
func (s *Substance) SetDoseBounds(actor uuid.UUID, min, max, rounding, doseLimit decimal.NullDecimal) error {
	if err := s.Touch(actor); err != nil {
		return err
	}
	s.Min = min
	s.Max = max
	s.Rounding = rounding
	s.DoseLimit = doseLimit
	return nil
}

// SetNotes sets the free-form notes
func (s *Substance) SetNotes(actor uuid.UUID, notes string) error {
	if err := s.Touch(actor); err != nil {
		return err
	}
	s.Notes = notes
	return nil
}

// SubstanceCategoryLink binds a substance to a (category, subcategory) pair.
// The subcategory is optional and is detached (set null) when it is deleted,
// while category or substance deletion removes the link.
type SubstanceCategoryLink struct {
	shared.AuditedEntity
	SubstanceID   uuid.UUID  `gorm:"column:active_substance_id;type:uuid;not null;index"`
	CategoryID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	SubcategoryID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (SubstanceCategoryLink) TableName() string {
	return "active_substance_category"
}

// NewSubstanceCategoryLink creates a new link between a substance and a
// category, optionally narrowed to a subcategory. A subcategory that does not
// belong to the given category is rejected.
func NewSubstanceCategoryLink(actor uuid.UUID, substance *Substance, category *Category, subcategory *Subcategory) (*SubstanceCategoryLink, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Link creation requires an authenticated actor")
	}
	if substance == nil || substance.IsDeleted() {
		return nil, shared.ErrReferentialIntegrity
	}
	if category == nil || category.IsDeleted() {
		return nil, shared.ErrReferentialIntegrity
	}
	if subcategory != nil && (subcategory.IsDeleted() || subcategory.ParentID != category.ID) {
		return nil, shared.ErrReferentialIntegrity
	}

	link := &SubstanceCategoryLink{
		AuditedEntity: shared.NewAuditedEntity(actor),
		SubstanceID:   substance.ID,
		CategoryID:    category.ID,
	}
	if subcategory != nil {
		id := subcategory.ID
		link.SubcategoryID = &id
	}
	return link, nil
}
