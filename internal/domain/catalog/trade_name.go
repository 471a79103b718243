package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clinistock/backend/internal/domain/shared"
)

// TradeName is a specific branded, packaged form of an active substance. It
// resolves a producer and a supplier which may be the same vendor, different
// vendors, or absent while unknown. Concentration bounds are advisory data;
// validating an actual strength against substance-level bounds is a downstream
// concern.
type TradeName struct {
	shared.AuditedEntity
	SubstanceID         uuid.UUID  `gorm:"column:active_substance_id;type:uuid;not null;index"`
	ProducerID          *uuid.UUID `gorm:"type:uuid;index"`
	SupplierID          *uuid.UUID `gorm:"type:uuid;index"`
	LabelName           string     `gorm:"not null"`
	Strength            decimal.NullDecimal `gorm:"type:decimal(10,4)"`
	Density             decimal.NullDecimal `gorm:"type:decimal(10,4)"`
	Volume              decimal.NullDecimal `gorm:"type:decimal(10,4)"`
	ArticleNumber       *int
	ContraindicationID  *uuid.UUID          `gorm:"type:uuid"`
	MinConcentration    decimal.NullDecimal `gorm:"type:decimal(10,4)"`
	MaxConcentration    decimal.NullDecimal `gorm:"type:decimal(10,4)"`
	ContainerMaterialID *uuid.UUID          `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (TradeName) TableName() string {
	return "trade_name"
}

// NewTradeName creates a new trade name for the given substance
func NewTradeName(actor uuid.UUID, substance *Substance, labelName string) (*TradeName, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Trade name creation requires an authenticated actor")
	}
	if substance == nil || substance.IsDeleted() {
		return nil, shared.ErrReferentialIntegrity
	}
	if labelName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Trade name label cannot be empty")
	}

	return &TradeName{
		AuditedEntity: shared.NewAuditedEntity(actor),
		SubstanceID:   substance.ID,
		LabelName:     labelName,
	}, nil
}

// Relabel updates the trade name's label
func (t *TradeName) Relabel(actor uuid.UUID, labelName string) error {
	if labelName == "" {
		return shared.NewDomainError("INVALID_NAME", "Trade name label cannot be empty")
	}
	if err := t.Touch(actor); err != nil {
		return err
	}
	t.LabelName = labelName
	return nil
}

// AssignProducer links the producing vendor; nil clears the link.
func (t *TradeName) AssignProducer(actor uuid.UUID, producer *Vendor) error {
	if producer != nil && producer.IsDeleted() {
		return shared.ErrReferentialIntegrity
	}
	if err := t.Touch(actor); err != nil {
		return err
	}
	if producer == nil {
		t.ProducerID = nil
		return nil
	}
	id := producer.ID
	t.ProducerID = &id
	return nil
}

// AssignSupplier links the supplying vendor; nil clears the link. Producer and
// supplier may resolve to the same vendor.
func (t *TradeName) AssignSupplier(actor uuid.UUID, supplier *Vendor) error {
	if supplier != nil && supplier.IsDeleted() {
		return shared.ErrReferentialIntegrity
	}
	if err := t.Touch(actor); err != nil {
		return err
	}
	if supplier == nil {
		t.SupplierID = nil
		return nil
	}
	id := supplier.ID
	t.SupplierID = &id
	return nil
}

// AssignContraindication links a contraindication; nil clears the link.
func (t *TradeName) AssignContraindication(actor uuid.UUID, contraindication *Contraindication) error {
	if contraindication != nil && contraindication.IsDeleted() {
		return shared.ErrReferentialIntegrity
	}
	if err := t.Touch(actor); err != nil {
		return err
	}
	if contraindication == nil {
		t.ContraindicationID = nil
		return nil
	}
	id := contraindication.ID
	t.ContraindicationID = &id
	return nil
}

// AssignContainerMaterial links a container material; nil clears the link.
func (t *TradeName) AssignContainerMaterial(actor uuid.UUID, material *ContainerMaterial) error {
	if material != nil && material.IsDeleted() {
		return shared.ErrReferentialIntegrity
	}
	if err := t.Touch(actor); err != nil {
		return err
	}
	if material == nil {
		t.ContainerMaterialID = nil
		return nil
	}
	id := material.ID
	t.ContainerMaterialID = &id
	return nil
}

// SetMeasurements sets strength, density and volume
func (t *TradeName) SetMeasurements(actor uuid.UUID, strength, density, volume decimal.NullDecimal) error {
	if err := t.Touch(actor); err != nil {
		return err
	}
	t.Strength = strength
	t.Density = density
	t.Volume = volume
	return nil
}

// SetConcentrationBounds sets the advisory concentration bounds
func (t *TradeName) SetConcentrationBounds(actor uuid.UUID, min, max decimal.NullDecimal) error {
	if err := t.Touch(actor); err != nil {
		return err
	}
	t.MinConcentration = min
	t.MaxConcentration = max
	return nil
}

// SetArticleNumber sets the article number; nil clears it
func (t *TradeName) SetArticleNumber(actor uuid.UUID, articleNumber *int) error {
	if err := t.Touch(actor); err != nil {
		return err
	}
	t.ArticleNumber = articleNumber
	return nil
}
