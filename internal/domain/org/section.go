package org

import (
	"strings"

	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/shared"
	"github.com/clinistock/backend/internal/domain/shared/valueobject"
)

// SectionType classifies a section
type SectionType string

const (
	SectionTypeOutpatients SectionType = "outpatients"
	SectionTypePharmacy    SectionType = "pharmacy"
)

// IsValid reports whether the section type is a known value
func (t SectionType) IsValid() bool {
	switch t {
	case SectionTypeOutpatients, SectionTypePharmacy:
		return true
	}
	return false
}

// UnitStatus represents the operational status of a section or ward
type UnitStatus string

const (
	UnitStatusActive   UnitStatus = "active"
	UnitStatusInactive UnitStatus = "inactive"
)

// IsValid reports whether the status is a known value
func (s UnitStatus) IsValid() bool {
	return s == UnitStatusActive || s == UnitStatusInactive
}

// Section is the middle level of the hierarchy, owned by exactly one location.
type Section struct {
	shared.AuditedEntity
	Name             string      `gorm:"not null"`
	Code             string      `gorm:"not null"`
	LocationID       uuid.UUID   `gorm:"type:uuid;not null;index"`
	Type             SectionType `gorm:"type:varchar(20);not null;default:'outpatients'"`
	Status           UnitStatus  `gorm:"type:varchar(20);not null;default:'active'"`
	CostCenterNumber string
	OrderNumber      string
	MovementType     string
	Address          *valueobject.Address `gorm:"type:jsonb"`
	DeliveryAddress  *valueobject.Address `gorm:"type:jsonb"`
	IKNumber         string               `gorm:"column:ik_number"`
}

// TableName returns the table name for GORM
func (Section) TableName() string {
	return "section"
}

// NewSection creates a new section under the given location
func NewSection(actor uuid.UUID, location *Location, name, code string, sectionType SectionType) (*Section, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Section creation requires an authenticated actor")
	}
	if location == nil || location.IsDeleted() {
		return nil, shared.ErrReferentialIntegrity
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if !sectionType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Section type must be outpatients or pharmacy")
	}

	return &Section{
		AuditedEntity: shared.NewAuditedEntity(actor),
		Name:          name,
		Code:          strings.ToUpper(code),
		LocationID:    location.ID,
		Type:          sectionType,
		Status:        UnitStatusActive,
	}, nil
}

// Update updates the section's basic information
func (s *Section) Update(actor uuid.UUID, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := s.Touch(actor); err != nil {
		return err
	}
	s.Name = name
	return nil
}

// SetOperationalMetadata sets the cost-center, order and movement metadata
func (s *Section) SetOperationalMetadata(actor uuid.UUID, costCenterNumber, orderNumber, movementType string) error {
	if err := s.Touch(actor); err != nil {
		return err
	}
	s.CostCenterNumber = costCenterNumber
	s.OrderNumber = orderNumber
	s.MovementType = movementType
	return nil
}

// SetAddresses sets the section's address and delivery address
func (s *Section) SetAddresses(actor uuid.UUID, address, deliveryAddress *valueobject.Address) error {
	if err := s.Touch(actor); err != nil {
		return err
	}
	s.Address = address
	s.DeliveryAddress = deliveryAddress
	return nil
}

// SetIKNumber sets the facility number
func (s *Section) SetIKNumber(actor uuid.UUID, ikNumber string) error {
	if err := s.Touch(actor); err != nil {
		return err
	}
	s.IKNumber = ikNumber
	return nil
}

// Activate marks the section active
func (s *Section) Activate(actor uuid.UUID) error {
	if err := s.Touch(actor); err != nil {
		return err
	}
	s.Status = UnitStatusActive
	return nil
}

// Deactivate marks the section inactive
func (s *Section) Deactivate(actor uuid.UUID) error {
	if err := s.Touch(actor); err != nil {
		return err
	}
	s.Status = UnitStatusInactive
	return nil
}

// IsActive returns true if the section is active
func (s *Section) IsActive() bool {
	return s.Status == UnitStatusActive
}
