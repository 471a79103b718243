package catalog

import (
	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/shared"
	"github.com/clinistock/backend/internal/domain/shared/valueobject"
)

// VendorType classifies a vendor's primary role
type VendorType string

const (
	VendorTypeSupplier VendorType = "supplier"
	VendorTypeProducer VendorType = "producer"
)

// IsValid reports whether the vendor type is a known value
func (t VendorType) IsValid() bool {
	return t == VendorTypeSupplier || t == VendorTypeProducer
}

// Vendor is a company producing or supplying trade names. The type is
// descriptive only: a trade name may resolve the same vendor as both producer
// and supplier.
type Vendor struct {
	shared.AuditedEntity
	Name    string               `gorm:"not null"`
	Type    VendorType           `gorm:"type:varchar(20);not null"`
	Address *valueobject.Address `gorm:"type:jsonb"`
	Notes   string
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendor"
}

// NewVendor creates a new vendor
func NewVendor(actor uuid.UUID, name string, vendorType VendorType) (*Vendor, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Vendor creation requires an authenticated actor")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Vendor name cannot be empty")
	}
	if !vendorType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Vendor type must be supplier or producer")
	}

	return &Vendor{
		AuditedEntity: shared.NewAuditedEntity(actor),
		Name:          name,
		Type:          vendorType,
	}, nil
}

// Rename updates the vendor's name
func (v *Vendor) Rename(actor uuid.UUID, name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Vendor name cannot be empty")
	}
	if err := v.Touch(actor); err != nil {
		return err
	}
	v.Name = name
	return nil
}

// SetAddress sets the vendor's structured address
func (v *Vendor) SetAddress(actor uuid.UUID, address *valueobject.Address) error {
	if err := v.Touch(actor); err != nil {
		return err
	}
	v.Address = address
	return nil
}

// SetNotes sets the free-form notes
func (v *Vendor) SetNotes(actor uuid.UUID, notes string) error {
	if err := v.Touch(actor); err != nil {
		return err
	}
	v.Notes = notes
	return nil
}
