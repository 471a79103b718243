package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clinistock/backend/internal/domain/catalog"
	"github.com/clinistock/backend/internal/domain/org"
	"github.com/clinistock/backend/internal/domain/shared"
)

// Batch records a physical quantity of one trade name present at exactly one
// ward. The stored (location, section, ward) triple is denormalized and must
// stay mutually consistent; the ward pins the section and location
// transitively.
type Batch struct {
	shared.AuditedEntity
	Name        string     `gorm:"not null"`
	ExpiryDate  *time.Time
	LocationID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	SectionID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	WardID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TradeNameID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,4);not null"`
}

// TableName returns the table name for GORM
func (Batch) TableName() string {
	return "batch"
}

// NewBatch creates a new batch of the given trade name at the given ward. The
// triple must be consistent: the ward must belong to the section and the
// section to the location.
func NewBatch(actor uuid.UUID, location *org.Location, section *org.Section, ward *org.Ward, tradeName *catalog.TradeName, name string, quantity decimal.Decimal) (*Batch, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Batch creation requires an authenticated actor")
	}
	if location == nil || location.IsDeleted() {
		return nil, shared.ErrReferentialIntegrity
	}
	if section == nil || section.IsDeleted() || section.LocationID != location.ID {
		return nil, shared.ErrReferentialIntegrity
	}
	if ward == nil || ward.IsDeleted() || ward.SectionID != section.ID || ward.LocationID != location.ID {
		return nil, shared.ErrReferentialIntegrity
	}
	if tradeName == nil || tradeName.IsDeleted() {
		return nil, shared.ErrReferentialIntegrity
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Batch name cannot be empty")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Batch quantity cannot be negative")
	}

	return &Batch{
		AuditedEntity: shared.NewAuditedEntity(actor),
		Name:          name,
		LocationID:    location.ID,
		SectionID:     section.ID,
		WardID:        ward.ID,
		TradeNameID:   tradeName.ID,
		Quantity:      quantity,
	}, nil
}

// Rename updates the batch's name
func (b *Batch) Rename(actor uuid.UUID, name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Batch name cannot be empty")
	}
	if err := b.Touch(actor); err != nil {
		return err
	}
	b.Name = name
	return nil
}

// SetQuantity sets the stock quantity
func (b *Batch) SetQuantity(actor uuid.UUID, quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Batch quantity cannot be negative")
	}
	if err := b.Touch(actor); err != nil {
		return err
	}
	b.Quantity = quantity
	return nil
}

// SetExpiryDate sets the informational expiry date; nil clears it. No
// expiry-driven state transition happens in this layer.
func (b *Batch) SetExpiryDate(actor uuid.UUID, expiryDate *time.Time) error {
	if err := b.Touch(actor); err != nil {
		return err
	}
	b.ExpiryDate = expiryDate
	return nil
}

// IsExpired reports whether the batch's expiry date lies before the given
// reference time. Purely informational.
func (b *Batch) IsExpired(now time.Time) bool {
	return b.ExpiryDate != nil && b.ExpiryDate.Before(now)
}
