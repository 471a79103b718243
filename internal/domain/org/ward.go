package org

import (
	"strings"

	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/shared"
)

// Ward is the leaf of the hierarchy. It stores a direct pointer to both its
// section and that section's location, so downstream entities resolve the full
// scope path with a single-level join instead of a recursive ascent.
type Ward struct {
	shared.AuditedEntity
	Name             string     `gorm:"not null"`
	Code             string     `gorm:"not null"`
	LocationID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	SectionID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status           UnitStatus `gorm:"type:varchar(20);not null;default:'active'"`
	CostCenterNumber string
	OrderNumber      string
	MovementType     string
}

// TableName returns the table name for GORM
func (Ward) TableName() string {
	return "ward"
}

// NewWard creates a new ward under the given location and section. The stored
// location must equal the section's location; an inconsistent triple is
// rejected.
func NewWard(actor uuid.UUID, location *Location, section *Section, name, code string) (*Ward, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Ward creation requires an authenticated actor")
	}
	if location == nil || location.IsDeleted() {
		return nil, shared.ErrReferentialIntegrity
	}
	if section == nil || section.IsDeleted() {
		return nil, shared.ErrReferentialIntegrity
	}
	if section.LocationID != location.ID {
		return nil, shared.ErrReferentialIntegrity
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateCode(code); err != nil {
		return nil, err
	}

	return &Ward{
		AuditedEntity: shared.NewAuditedEntity(actor),
		Name:          name,
		Code:          strings.ToUpper(code),
		LocationID:    location.ID,
		SectionID:     section.ID,
		Status:        UnitStatusActive,
	}, nil
}

// Update updates the ward's basic information
func (w *Ward) Update(actor uuid.UUID, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := w.Touch(actor); err != nil {
		return err
	}
	w.Name = name
	return nil
}

// SetOperationalMetadata sets the cost-center, order and movement metadata
func (w *Ward) SetOperationalMetadata(actor uuid.UUID, costCenterNumber, orderNumber, movementType string) error {
	if err := w.Touch(actor); err != nil {
		return err
	}
	w.CostCenterNumber = costCenterNumber
	w.OrderNumber = orderNumber
	w.MovementType = movementType
	return nil
}

// Activate marks the ward active
func (w *Ward) Activate(actor uuid.UUID) error {
	if err := w.Touch(actor); err != nil {
		return err
	}
	w.Status = UnitStatusActive
	return nil
}

// Deactivate marks the ward inactive
func (w *Ward) Deactivate(actor uuid.UUID) error {
	if err := w.Touch(actor); err != nil {
		return err
	}
	w.Status = UnitStatusInactive
	return nil
}

// IsActive returns true if the ward is active
func (w *Ward) IsActive() bool {
	return w.Status == UnitStatusActive
}
